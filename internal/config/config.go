package config

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormlogger "gorm.io/gorm/logger"
)

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        gormlogger.LogLevel
	TxIsolation     sql.IsolationLevel
}

// GetDSN memakai DB_DSN kalau diisi, kalau tidak dirakit dari bagian-bagiannya
func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type AuthConfig struct {
	Enabled bool
	Secret  string
	TTL     time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type MidtransConfig struct {
	ServerKey  string
	Production bool
}

type Config struct {
	Env               string
	Port              string
	LogLevel          string
	DefaultTimezone   string
	LowStockThreshold int
	ShutdownTimeout   time.Duration
	FCMCredentials    string

	DB        DBConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Midtrans  MidtransConfig
}

// Load membaca .env (kalau ada) lalu environment variable
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("baca .env: %w", err)
	}

	isolation, err := ParseIsolation(getEnv("DB_TX_ISOLATION", "repeatable-read"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DefaultTimezone:   getEnv("DEFAULT_TIMEZONE", "Asia/Jakarta"),
		LowStockThreshold: getEnvAsInt("LOW_STOCK_THRESHOLD", 10),
		ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		FCMCredentials:    getEnv("FCM_CREDENTIALS_FILE", ""),
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "127.0.0.1"),
			Port:            getEnv("DB_PORT", "3306"),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "clinic"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 50),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			LogLevel:        getEnvAsLogLevel("DB_LOG_LEVEL", gormlogger.Warn),
			TxIsolation:     isolation,
		},
		Auth: AuthConfig{
			Enabled: getEnvAsBool("AUTH_ENABLED", true),
			Secret:  getEnv("JWT_SECRET", ""),
			TTL:     getEnvAsDuration("JWT_TTL", 24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvAsFloat("RATE_LIMIT_RPS", 5),
			Burst: getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
		Midtrans: MidtransConfig{
			ServerKey:  getEnv("MIDTRANS_SERVER_KEY", ""),
			Production: getEnv("MIDTRANS_ENV", "sandbox") == "production",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DB.MaxOpenConns <= 0 || c.DB.MaxIdleConns < 0 {
		return errors.New("ukuran pool database tidak valid")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("RATE_LIMIT_RPS dan RATE_LIMIT_BURST harus > 0")
	}
	if c.Auth.Enabled && c.Auth.Secret == "" {
		if c.Env == "production" {
			return errors.New("JWT_SECRET wajib diisi di production")
		}
		c.Auth.Secret = "rahasia_dapur_klinik"
	}
	if c.DefaultTimezone == "Local" {
		return errors.New("DEFAULT_TIMEZONE harus nama zona IANA")
	}
	if _, err := time.LoadLocation(c.DefaultTimezone); err != nil {
		return fmt.Errorf("DEFAULT_TIMEZONE tidak valid: %w", err)
	}
	return nil
}

// ParseIsolation menerjemahkan DB_TX_ISOLATION ke level database/sql
func ParseIsolation(s string) (sql.IsolationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "read-committed":
		return sql.LevelReadCommitted, nil
	case "repeatable-read", "":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	default:
		return sql.LevelDefault, fmt.Errorf("DB_TX_ISOLATION tidak dikenal: %q", s)
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsLogLevel(key string, defaultValue gormlogger.LogLevel) gormlogger.LogLevel {
	switch getEnv(key, "") {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return defaultValue
	}
}
