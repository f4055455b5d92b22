package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// WageProrationPolicy decides how Monthly-wage labour is paid for a period.
type WageProrationPolicy string

const (
	// ProrationDailyOnly pays the flat monthly amount whenever the period has
	// at least one attendance record for the labour.
	ProrationDailyOnly WageProrationPolicy = "DailyOnly"
	// ProrationMonthly pays monthlyWage * workedDays / daysInMonth.
	ProrationMonthly WageProrationPolicy = "ProratedMonthly"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Ledger  LedgerConfig
	Close   CloseConfig
	Sheets  SheetsConfig
	Notify  NotifyConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// LedgerConfig carries the aggregation policy knobs.
type LedgerConfig struct {
	WageProration         WageProrationPolicy
	IncludeDieselInProfit bool
}

// CloseConfig holds nightly-close scheduler settings.
type CloseConfig struct {
	CronSchedule string
	Timezone     string
}

// SheetsConfig enables the daily-summary spreadsheet mirror when both fields
// are set.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// NotifyConfig enables webhook notifications when URL is set.
type NotifyConfig struct {
	WebhookURL string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "stonemine"),
		},
		Ledger: LedgerConfig{
			WageProration:         WageProrationPolicy(getenvWithDefault("WAGE_PRORATION_POLICY", string(ProrationMonthly))),
			IncludeDieselInProfit: os.Getenv("TRIP_PROFIT_INCLUDE_DIESEL") == "true",
		},
		Close: CloseConfig{
			CronSchedule: getenvWithDefault("DAILY_CLOSE_CRON", "0 21 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_MIRROR_ID"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated and that
// the policy knobs carry known values.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	switch c.Ledger.WageProration {
	case ProrationDailyOnly, ProrationMonthly:
	default:
		return fmt.Errorf("WAGE_PRORATION_POLICY must be %q or %q, got %q",
			ProrationDailyOnly, ProrationMonthly, c.Ledger.WageProration)
	}

	if c.Close.CronSchedule == "" {
		return errors.New("DAILY_CLOSE_CRON must be provided")
	}
	if c.Close.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	// Sheets mirror is optional, but half a configuration is a mistake.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_MIRROR_ID must be set together")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
