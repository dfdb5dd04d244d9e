// Package config loads runtime configuration from the environment, an
// optional .env file, and an optional config.toml.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SourceCSV    = "csv"
	SourceScript = "script"
	SourceSheets = "sheets"
)

type Config struct {
	Port       string
	SourceKind string

	CSVURL    string
	ScriptURL string

	SpreadsheetID string
	Worksheet     string
	Credentials   string
}

// Load reads configuration and validates that the selected record-source
// strategy has the parameters it needs. Environment variables win over the
// config file.
func Load() (Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetDefault("port", "8080")
	viper.SetDefault("source", SourceCSV)
	viper.SetDefault("worksheet", "Sheet1")

	cfg := Config{
		Port:          viper.GetString("port"),
		SourceKind:    viper.GetString("source"),
		CSVURL:        viper.GetString("csv_url"),
		ScriptURL:     viper.GetString("script_url"),
		SpreadsheetID: viper.GetString("spreadsheet_id"),
		Worksheet:     viper.GetString("worksheet"),
		Credentials:   viper.GetString("google_credentials"),
	}

	switch cfg.SourceKind {
	case SourceCSV:
		if cfg.CSVURL == "" {
			return cfg, fmt.Errorf("source %q requires CSV_URL", cfg.SourceKind)
		}
	case SourceScript:
		if cfg.ScriptURL == "" {
			return cfg, fmt.Errorf("source %q requires SCRIPT_URL", cfg.SourceKind)
		}
	case SourceSheets:
		if cfg.SpreadsheetID == "" {
			return cfg, fmt.Errorf("source %q requires SPREADSHEET_ID", cfg.SourceKind)
		}
		if cfg.Credentials == "" {
			return cfg, fmt.Errorf("source %q requires GOOGLE_CREDENTIALS", cfg.SourceKind)
		}
	default:
		return cfg, fmt.Errorf("unknown source %q (expected csv, script or sheets)", cfg.SourceKind)
	}

	return cfg, nil
}
