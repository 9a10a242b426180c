package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the board-share service
type Config struct {
	Database DatabaseConfig
	Kafka    KafkaConfig
	Logging  LoggingConfig
	Service  ServiceConfig
	Auth     AuthConfig
	OAuth    OAuthConfig
	GRPC     GRPCConfig
	Cache    CacheConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string // postgres or sqlite
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string // sqlite file path
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Enabled        bool
	Brokers        []string
	Topic          string
	PublishTimeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name            string
	Port            string
	AllowedOrigin   string
	ShutdownTimeout time.Duration
}

// AuthConfig holds session token configuration
type AuthConfig struct {
	JWTSecret         string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
	CookieSecure      bool
}

// OAuthConfig holds Azure AD application settings
type OAuthConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// GRPCConfig holds gRPC health server configuration
type GRPCConfig struct {
	Port          string
	CheckInterval time.Duration
}

// CacheConfig holds authenticated user cache configuration
type CacheConfig struct {
	UserCacheSize int
	UserCacheTTL  time.Duration
}

// Result is fx.Out struct for providing config dependencies
type Result struct {
	fx.Out

	Config         *Config
	DatabaseConfig *DatabaseConfig
	KafkaConfig    *KafkaConfig
	LoggingConfig  *LoggingConfig
	ServiceConfig  *ServiceConfig
	AuthConfig     *AuthConfig
	OAuthConfig    *OAuthConfig
	GRPCConfig     *GRPCConfig
	CacheConfig    *CacheConfig
}

// Out returns fx-compatible config result
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:         cfg,
		DatabaseConfig: &cfg.Database,
		KafkaConfig:    &cfg.Kafka,
		LoggingConfig:  &cfg.Logging,
		ServiceConfig:  &cfg.Service,
		AuthConfig:     &cfg.Auth,
		OAuthConfig:    &cfg.OAuth,
		GRPCConfig:     &cfg.GRPC,
		CacheConfig:    &cfg.Cache,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DATABASE_DRIVER", "postgres")),
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "board_user"),
			Password: getEnv("DATABASE_PASSWORD", "board_pass"),
			DBName:   getEnv("DATABASE_NAME", "board_share"),
			SSLMode:  getEnv("DATABASE_SSLMODE", "disable"),
			Path:     getEnv("DATABASE_PATH", "board-share.db"),
		},
		Kafka: KafkaConfig{
			Enabled:        getEnvBool("KAFKA_ENABLED", false),
			Brokers:        strings.Split(getEnv("KAFKA_BROKERS", "localhost:9093"), ","),
			Topic:          getEnv("KAFKA_TOPIC", "board-share.events"),
			PublishTimeout: getEnvDuration("KAFKA_PUBLISH_TIMEOUT", 2*time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name:            getEnv("SERVICE_NAME", "board-share"),
			Port:            getEnv("SERVICE_PORT", "8080"),
			AllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
			ShutdownTimeout: getEnvDuration("SERVICE_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", ""),
			AccessExpiration:  getEnvDuration("JWT_EXPIRATION", 15*time.Minute),
			RefreshExpiration: getEnvDuration("JWT_REFRESH_EXPIRATION", 7*24*time.Hour),
			CookieSecure:      getEnvBool("COOKIE_SECURE", false),
		},
		OAuth: OAuthConfig{
			TenantID:     getEnv("AZURE_TENANT_ID", "common"),
			ClientID:     getEnv("AZURE_CLIENT_ID", ""),
			ClientSecret: getEnv("AZURE_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("AZURE_REDIRECT_URI", "http://localhost:5173/login"),
		},
		GRPC: GRPCConfig{
			Port:          getEnv("GRPC_PORT", "9090"),
			CheckInterval: getEnvDuration("GRPC_HEALTH_INTERVAL", 15*time.Second),
		},
		Cache: CacheConfig{
			UserCacheSize: getEnvInt("USER_CACHE_SIZE", 1024),
			UserCacheTTL:  getEnvDuration("USER_CACHE_TTL", time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("DATABASE_HOST is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("DATABASE_USER is required")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("DATABASE_NAME is required")
		}
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("DATABASE_PATH is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER: %s", c.Database.Driver)
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	if c.Kafka.PublishTimeout <= 0 {
		return fmt.Errorf("KAFKA_PUBLISH_TIMEOUT must be positive")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	if c.Auth.AccessExpiration <= 0 || c.Auth.RefreshExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION and JWT_REFRESH_EXPIRATION must be positive")
	}

	if c.OAuth.ClientID == "" {
		return fmt.Errorf("AZURE_CLIENT_ID is required")
	}

	return nil
}

// GetDSN returns database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets environment variable as duration with default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
