package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	INPUT_DIR=./data/input
//	INPUT_PATTERN=*.csv
//	INPUT_PARALLEL=0
type Config struct {
	Input InputConfig // Where ledger files are read from
}

// InputConfig describes the ledger files consumed by the CLI.
//
// Fields:
//   - Dir: directory scanned for ledger files.
//   - Pattern: glob applied to file names inside Dir (filepath.Match syntax).
//   - Parallel: files parsed concurrently; 0 picks min(NumCPU, 8).
type InputConfig struct {
	Dir      string
	Pattern  string
	Parallel int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read by cmd/ when wiring flags.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If values are missing or malformed, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("INPUT_DIR", "./data/input")
	viper.SetDefault("INPUT_PATTERN", "*.csv")
	viper.SetDefault("INPUT_PARALLEL", 0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Input: InputConfig{
			Dir:      viper.GetString("INPUT_DIR"),
			Pattern:  viper.GetString("INPUT_PATTERN"),
			Parallel: viper.GetInt("INPUT_PARALLEL"),
		},
	}

	validateConfig()
}

// validateConfig collects every problem with AppConfig and terminates the
// application with log.Fatalf if there is at least one.
func validateConfig() {
	if problems := check(AppConfig); len(problems) > 0 {
		log.Fatalf("❌ Invalid configuration: %v\n", problems)
	}
}

// check returns the names of the settings that are missing or malformed.
func check(cfg Config) []string {
	var problems []string

	if cfg.Input.Dir == "" {
		problems = append(problems, "INPUT_DIR")
	}
	if cfg.Input.Pattern == "" {
		problems = append(problems, "INPUT_PATTERN")
	} else if _, err := filepath.Match(cfg.Input.Pattern, ""); err != nil {
		problems = append(problems, "INPUT_PATTERN (malformed glob)")
	}
	if cfg.Input.Parallel < 0 {
		problems = append(problems, "INPUT_PARALLEL (must be >= 0)")
	}

	return problems
}
