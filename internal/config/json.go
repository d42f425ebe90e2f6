package config

import (
	"encoding/json"
	"os"

	"moodmate/internal/flagx"
)

// JsonConfig is the DTO for JSON unmarshalling. Values are copied into the
// runtime Config afterwards; empty fields leave the current value alone.
type JsonConfig struct {
	DataDir             string `json:"data_dir"`
	AnalyzeEndpointAddr string `json:"analyze_endpoint_addr"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. No flag means no JSON is loaded. Read and unmarshal
// errors panic; config is resolved once at startup and a broken file
// should stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.AnalyzeEndpointAddr != "" {
		cfg.AnalyzeEndpointAddr = jc.AnalyzeEndpointAddr
	}
}
