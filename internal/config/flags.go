package config

import (
	"flag"
	"os"

	"moodmate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   record store directory
//	-a string   analysis endpoint URL
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// components (like -c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "record store directory")
	fs.StringVar(&cfg.AnalyzeEndpointAddr, "a", cfg.AnalyzeEndpointAddr, "journal analysis endpoint URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
