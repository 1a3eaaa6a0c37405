package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DBDriver        string `mapstructure:"DB_DRIVER"` // sqlite | postgres
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	DBBusyTimeoutMS int    `mapstructure:"DB_BUSY_TIMEOUT_MS"`

	// Redis (optional: empty keeps the token denylist in memory)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	AdminUsername      string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword      string `mapstructure:"ADMIN_PASSWORD"`

	// SMTP
	SMTPHost             string `mapstructure:"SMTP_HOST"`
	SMTPPort             int    `mapstructure:"SMTP_PORT"`
	SMTPUser             string `mapstructure:"SMTP_USER"`
	SMTPPassword         string `mapstructure:"SMTP_PASSWORD"`
	DespachoEmailDestino string `mapstructure:"DESPACHO_EMAIL_DESTINO"`

	// Output files
	PDFStoragePath   string `mapstructure:"PDF_STORAGE_PATH"`
	ExcelStoragePath string `mapstructure:"EXCEL_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 5000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_URL", "viajes.db")
	viper.SetDefault("DB_BUSY_TIMEOUT_MS", 30000)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("JWT_SECRET", "aratrack_dev_secret_change_me_32chars")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("DESPACHO_EMAIL_DESTINO", "")
	viper.SetDefault("PDF_STORAGE_PATH", "pdfs")
	viper.SetDefault("EXCEL_STORAGE_PATH", "reportes")

	// Optional .env file for local development; missing is fine
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
