package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config is the process configuration for the Jobly API.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	JWT        JWTConfig        `json:"jwt"`
	Security   SecurityConfig   `json:"security"`
	Cache      CacheConfig      `json:"cache"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
	Metrics    MetricsConfig    `json:"metrics"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	DSN             string        `json:"dsn"`
	SSLMode         string        `json:"sslMode"`
	Schema          string        `json:"schema"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret string        `json:"-"`
	TTL    time.Duration `json:"ttl"`
}

// SecurityConfig holds password policy configuration
type SecurityConfig struct {
	BcryptCost       int `json:"bcryptCost"`
	PasswordMinScore int `json:"passwordMinScore"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Prefix string      `json:"prefix"`
	Redis  RedisConfig `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Database int    `json:"database"`
	PoolSize int    `json:"poolSize"`
}

// RateLimitConfig holds rate limiting configuration for a specific endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

// RateLimitsConfig holds rate limiting configuration for all endpoints
type RateLimitsConfig struct {
	Login    RateLimitConfig `json:"login"`
	Register RateLimitConfig `json:"register"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// LoadFromEnv loads configuration from the environment.
// Precedence: explicit environment variables, then the .env file, then defaults.
func LoadFromEnv() (*Config, error) {
	// godotenv never overrides variables that are already set.
	envPaths := []string{".env", "../.env", "../../.env"}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return load(func(key string) (string, bool) {
		value := os.Getenv(key)
		return value, value != ""
	})
}

// LoadFromMap loads configuration from an in-memory map.
// This is the primary helper for testing configuration logic in isolation
// without manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return load(func(key string) (string, bool) {
		value, exists := envMap[key]
		return value, exists
	})
}

type lookupFunc func(key string) (string, bool)

func load(lookup lookupFunc) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, ok := lookup(key); ok {
			return value
		}
		return defaultValue
	}

	getInt := func(key string, defaultValue int) int {
		if value, ok := lookup(key); ok {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}

	getBool := func(key string, defaultValue bool) bool {
		if value, ok := lookup(key); ok {
			if boolValue, err := strconv.ParseBool(value); err == nil {
				return boolValue
			}
		}
		return defaultValue
	}

	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if value, ok := lookup(key); ok {
			if duration, err := time.ParseDuration(value); err == nil {
				return duration
			}
		}
		return defaultValue
	}

	config := &Config{
		Server: ServerConfig{
			Host:      get("HOST", "0.0.0.0"),
			Port:      getInt("PORT", 3001),
			WebDomain: get("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     getBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            get("POSTGRES_HOST", "localhost"),
				Port:            getInt("POSTGRES_PORT", 5432),
				Username:        get("POSTGRES_USERNAME", ""),
				Password:        get("POSTGRES_PASSWORD", ""),
				Database:        get("POSTGRES_DATABASE", "jobly"),
				DSN:             get("DATABASE_URL", ""),
				SSLMode:         get("POSTGRES_SSL_MODE", "disable"),
				Schema:          get("POSTGRES_SCHEMA", ""),
				MaxOpenConns:    getInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		JWT: JWTConfig{
			Secret: get("JWT_SECRET", ""),
			TTL:    getDuration("JWT_TTL", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost:       getInt("BCRYPT_COST", 12),
			PasswordMinScore: getInt("PASSWORD_MIN_SCORE", 2),
		},
		Cache: CacheConfig{
			Prefix: get("CACHE_PREFIX", "jobly:"),
			Redis: RedisConfig{
				Enabled:  getBool("REDIS_ENABLED", false),
				Address:  get("REDIS_ADDRESS", "localhost:6379"),
				Password: get("REDIS_PASSWORD", ""),
				Database: getInt("REDIS_DATABASE", 0),
				PoolSize: getInt("REDIS_POOL_SIZE", 10),
			},
		},
		RateLimits: RateLimitsConfig{
			Login: RateLimitConfig{
				Enabled:  getBool("RATE_LIMIT_LOGIN_ENABLED", true),
				Max:      getInt("RATE_LIMIT_LOGIN_MAX", 5),
				Duration: getDuration("RATE_LIMIT_LOGIN_DURATION", 15*time.Minute),
			},
			Register: RateLimitConfig{
				Enabled:  getBool("RATE_LIMIT_REGISTER_ENABLED", true),
				Max:      getInt("RATE_LIMIT_REGISTER_MAX", 10),
				Duration: getDuration("RATE_LIMIT_REGISTER_DURATION", 1*time.Hour),
			},
		},
		Metrics: MetricsConfig{
			Enabled: getBool("METRICS_ENABLED", true),
			Path:    get("METRICS_PATH", "/metrics"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.JWT.Secret) == "" {
		errors = append(errors, "JWT_SECRET is required")
	}
	if c.JWT.TTL <= 0 {
		errors = append(errors, "JWT_TTL must be positive")
	}
	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		errors = append(errors, fmt.Sprintf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Security.PasswordMinScore < 0 || c.Security.PasswordMinScore > 4 {
		errors = append(errors, "PASSWORD_MIN_SCORE must be between 0 and 4")
	}
	if c.Server.Port <= 0 {
		errors = append(errors, "PORT must be positive")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errors = append(errors, "METRICS_PATH must start with /")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

const redacted = "xxxxx"

// Redacted returns a copy that is safe to log: secrets are masked and a URL
// DSN keeps everything but its password.
func (c Config) Redacted() Config {
	if c.JWT.Secret != "" {
		c.JWT.Secret = redacted
	}
	if c.Database.Postgres.Password != "" {
		c.Database.Postgres.Password = redacted
	}
	if c.Cache.Redis.Password != "" {
		c.Cache.Redis.Password = redacted
	}
	if dsn := c.Database.Postgres.DSN; dsn != "" {
		if u, err := url.Parse(dsn); err == nil && u.Scheme != "" {
			c.Database.Postgres.DSN = u.Redacted()
		} else {
			c.Database.Postgres.DSN = redacted
		}
	}
	return c
}
