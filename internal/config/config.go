package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Cache     CacheConfig
	Jobs      JobsConfig
	Dashboard DashboardConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SecurityConfig holds the AES-256 keys (64 hex chars each)
type SecurityConfig struct {
	SecretEncryptionKey  string
	SessionEncryptionKey string
}

// CacheConfig holds redis TTLs for cached read models
type CacheConfig struct {
	SettingsTTL    time.Duration
	PermissionsTTL time.Duration
}

// JobsConfig holds background job intervals
type JobsConfig struct {
	PromotionExpiryInterval time.Duration
}

// DashboardConfig holds dashboard widget defaults
type DashboardConfig struct {
	LowStockThreshold int
}

const zeroKey = "0000000000000000000000000000000000000000000000000000000000000000"

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", ""),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			DBName:       getEnv("DB_NAME", "shop_admin"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Security: SecurityConfig{
			SecretEncryptionKey:  getEnv("SECRET_ENCRYPTION_KEY", zeroKey),
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", zeroKey),
		},
		Cache: CacheConfig{
			SettingsTTL:    getEnvAsDuration("CACHE_SETTINGS_TTL", 10*time.Minute),
			PermissionsTTL: getEnvAsDuration("CACHE_PERMISSIONS_TTL", 5*time.Minute),
		},
		Jobs: JobsConfig{
			PromotionExpiryInterval: getEnvAsDuration("JOB_PROMOTION_EXPIRY_INTERVAL", time.Minute),
		},
		Dashboard: DashboardConfig{
			LowStockThreshold: getEnvAsInt("DASHBOARD_LOW_STOCK_THRESHOLD", 5),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
