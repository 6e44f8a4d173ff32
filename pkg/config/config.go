package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RateLimit     string
	CSVExportDir  string
	CSVExportTTL  time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CSV_EXPORT_DIR", "exports")
	viper.SetDefault("CSV_EXPORT_TTL", "1h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	cfg.CSVExportDir = viper.GetString("CSV_EXPORT_DIR")
	if cfg.CSVExportDir == "" {
		cfg.CSVExportDir = "exports"
		log.Printf("Warning: CSV_EXPORT_DIR not set. Defaulting to %s.\n", cfg.CSVExportDir)
	}

	exportTTLStr := viper.GetString("CSV_EXPORT_TTL")
	exportTTL, err := time.ParseDuration(exportTTLStr)
	if err != nil {
		exportTTL = time.Hour
		if exportTTLStr != "" {
			log.Printf("Warning: Invalid value for CSV_EXPORT_TTL ('%s'). Defaulting to %s.\n", exportTTLStr, exportTTL.String())
		} else {
			log.Printf("Warning: CSV_EXPORT_TTL not set. Defaulting to %s.\n", exportTTL.String())
		}
	}
	cfg.CSVExportTTL = exportTTL

	return cfg, nil
}
