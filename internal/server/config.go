package server

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"moodmate/internal/flagx"
)

// Config holds runtime settings for the analysis proxy.
//
// The OpenAI API key never travels through flags or JSON; it is read from
// the environment (optionally seeded from a .env file) so it stays out of
// process listings and checked-in config.
type Config struct {
	Addr          string
	OpenAIBaseURL string
	OpenAIAPIKey  string
	Model         string
}

func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.OpenAIBaseURL = "https://api.openai.com/v1"
	c.Model = "gpt-4o-mini"
}

// LoadConfig applies defaults, then the environment, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	// A missing .env file is fine; the variables may come from the real
	// environment.
	_ = godotenv.Load()

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.Model = v
	}
}

// parseFlags supports:
//
//	-a string   address and port to listen on
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
