package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBUser     = "postgres"
	DefaultDBName     = "travel"
	DefaultCORSOrigin = "*"
)

type Config struct {
	HTTPPort string

	DatabaseDSN    string
	DBMaxOpenConns int

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string
	BcryptCost    int

	CORSOrigins string

	LogLevel  string
	LogFormat string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MetricsEnabled bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:      getEnv("PORT", "5000"),
		DatabaseDSN:   getEnv("DATABASE_DSN", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", DefaultCORSOrigin),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			getEnv("DB_HOST", DefaultDBHost),
			getEnv("DB_USER", DefaultDBUser),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", DefaultDBName),
			getEnv("DB_PORT", DefaultDBPort),
			getEnv("DB_SSLMODE", "disable"),
		)
	}

	var err error
	if cfg.DBMaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = getEnvInt("BCRYPT_COST", 10); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.JWTTTL, err = getEnvDuration("JWT_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.MetricsEnabled, err = getEnvBool("METRICS_ENABLED", true); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters")
	}
	if c.AdminEmail == "" || c.AdminPassword == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	if c.DBMaxOpenConns <= 0 {
		return errors.New("DB_MAX_OPEN_CONNS must be positive")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return errors.New("BCRYPT_COST must be between 4 and 31")
	}
	return nil
}

// RedisEnabled reports whether the token denylist should be backed by Redis.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}
