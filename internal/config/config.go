// Package config loads the settings for the MoodMate CLI.
package config

// Config holds runtime settings for the CLI.
//
// Fields:
//   - DataDir: directory the record store keeps its files in.
//   - AnalyzeEndpointAddr: full URL of the journal-analysis endpoint.
type Config struct {
	DataDir             string
	AnalyzeEndpointAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "moodmate.db"
	c.AnalyzeEndpointAddr = "http://127.0.0.1:8080/api/analyze-journal"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
