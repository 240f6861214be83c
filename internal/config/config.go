package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Tax    TaxConfig
	Oracle OracleConfig
	Export ExportConfig
}

// TaxConfig holds GST settings of the selling outlet.
type TaxConfig struct {
	HomeStateCode string `mapstructure:"home_state_code"`
}

// OracleConfig holds settings for the authoritative line tax service.
type OracleConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	URL         string `mapstructure:"url"`
	APIKey      string `mapstructure:"api_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// ExportConfig holds sales export settings.
type ExportConfig struct {
	ThresholdAmount decimal.Decimal `mapstructure:"threshold_amount"`
	Archive         bool            `mapstructure:"archive"`
	Concurrency     int             `mapstructure:"concurrency"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds the settings used to validate access tokens.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for the export archive.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the FUELBOOKS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FUELBOOKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "fuelbooks")
	v.SetDefault("db.password", "fuelbooks_secret")
	v.SetDefault("db.name", "fuelbooks_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "fuelbooks")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "fuelbooks-exports")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Tax defaults
	v.SetDefault("tax.home_state_code", "29")

	// Oracle defaults
	v.SetDefault("oracle.enabled", false)
	v.SetDefault("oracle.url", "")
	v.SetDefault("oracle.api_key", "")
	v.SetDefault("oracle.timeout_secs", 10)

	// Export defaults
	v.SetDefault("export.threshold_amount", "30000")
	v.SetDefault("export.archive", false)
	v.SetDefault("export.concurrency", 4)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "FUELBOOKS_SERVER_PORT",
		"server.read_timeout":     "FUELBOOKS_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "FUELBOOKS_SERVER_WRITE_TIMEOUT",
		"server.environment":      "FUELBOOKS_SERVER_ENVIRONMENT",
		"db.host":                 "FUELBOOKS_DB_HOST",
		"db.port":                 "FUELBOOKS_DB_PORT",
		"db.user":                 "FUELBOOKS_DB_USER",
		"db.password":             "FUELBOOKS_DB_PASSWORD",
		"db.name":                 "FUELBOOKS_DB_NAME",
		"db.sslmode":              "FUELBOOKS_DB_SSLMODE",
		"db.max_open":             "FUELBOOKS_DB_MAX_OPEN",
		"db.max_idle":             "FUELBOOKS_DB_MAX_IDLE",
		"jwt.secret":              "FUELBOOKS_JWT_SECRET",
		"jwt.issuer":              "FUELBOOKS_JWT_ISSUER",
		"s3.region":               "FUELBOOKS_S3_REGION",
		"s3.bucket":               "FUELBOOKS_S3_BUCKET",
		"s3.endpoint":             "FUELBOOKS_S3_ENDPOINT",
		"s3.access_key":           "FUELBOOKS_S3_ACCESS_KEY",
		"s3.secret_key":           "FUELBOOKS_S3_SECRET_KEY",
		"log.level":               "FUELBOOKS_LOG_LEVEL",
		"log.format":              "FUELBOOKS_LOG_FORMAT",
		"cors.allowed_origins":    "FUELBOOKS_CORS_ALLOWED_ORIGINS",
		"tax.home_state_code":     "FUELBOOKS_TAX_HOME_STATE_CODE",
		"oracle.enabled":          "FUELBOOKS_ORACLE_ENABLED",
		"oracle.url":              "FUELBOOKS_ORACLE_URL",
		"oracle.api_key":          "FUELBOOKS_ORACLE_API_KEY",
		"oracle.timeout_secs":     "FUELBOOKS_ORACLE_TIMEOUT_SECS",
		"export.threshold_amount": "FUELBOOKS_EXPORT_THRESHOLD_AMOUNT",
		"export.archive":          "FUELBOOKS_EXPORT_ARCHIVE",
		"export.concurrency":      "FUELBOOKS_EXPORT_CONCURRENCY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FUELBOOKS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FUELBOOKS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Tax = TaxConfig{
		HomeStateCode: v.GetString("tax.home_state_code"),
	}

	cfg.Oracle = OracleConfig{
		Enabled:     v.GetBool("oracle.enabled"),
		URL:         v.GetString("oracle.url"),
		APIKey:      v.GetString("oracle.api_key"),
		TimeoutSecs: v.GetInt("oracle.timeout_secs"),
	}
	if cfg.Oracle.Enabled && cfg.Oracle.URL == "" {
		return nil, fmt.Errorf("oracle.url is required when the tax oracle is enabled")
	}

	threshold, err := decimal.NewFromString(v.GetString("export.threshold_amount"))
	if err != nil {
		return nil, fmt.Errorf("parsing export.threshold_amount: %w", err)
	}
	if !threshold.IsPositive() {
		return nil, fmt.Errorf("export.threshold_amount must be positive, got %s", threshold)
	}
	cfg.Export = ExportConfig{
		ThresholdAmount: threshold,
		Archive:         v.GetBool("export.archive"),
		Concurrency:     v.GetInt("export.concurrency"),
	}
	if cfg.Export.Concurrency < 1 {
		cfg.Export.Concurrency = 1
	}

	return cfg, nil
}
