package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the server
type Config struct {
	AppMode   string
	Port      string
	LogLevel  string
	Database  DatabaseConfig
	JWT       JWTConfig
	Reconcile ReconcileConfig
	Seed      SeedConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// ReconcileConfig holds the settlement reconciler schedule
type ReconcileConfig struct {
	Enabled  bool
	Schedule string
}

// SeedConfig holds the bootstrap admin account
type SeedConfig struct {
	AdminIdentificacion string
	AdminNombres        string
	AdminPassword       string
}

// ClientConfig holds configuration for the operator CLI
type ClientConfig struct {
	AppMode   string
	LogLevel  string
	BaseURL   string
	Timeout   time.Duration
	TokenFile string
}

// DefaultBaseURL is used when API_BASE_URL is not set
const DefaultBaseURL = "http://localhost:3000/api"

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	_ = godotenv.Load()

	appMode, err := loadAppMode()
	if err != nil {
		return nil, err
	}

	reconcileEnabled, _ := strconv.ParseBool(getEnv("RECONCILE_ENABLED", "true"))

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", ""),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Reconcile: ReconcileConfig{
			Enabled:  reconcileEnabled,
			Schedule: getEnv("RECONCILE_CRON", "@every 10m"),
		},
		Seed: SeedConfig{
			AdminIdentificacion: getEnv("SEED_ADMIN_IDENTIFICACION", "1000000000"),
			AdminNombres:        getEnv("SEED_ADMIN_NOMBRES", "Administrador"),
			AdminPassword:       getEnv("SEED_ADMIN_PASSWORD", "admin123456"),
		},
	}

	AppConfig = config
	return config, nil
}

// LoadClient reads the CLI configuration from .env file and environment variables
func LoadClient() (*ClientConfig, error) {
	_ = godotenv.Load()

	appMode, err := loadAppMode()
	if err != nil {
		return nil, err
	}

	var timeout time.Duration
	if raw := getEnv("API_TIMEOUT", ""); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
		}
	}

	tokenFile := getEnv("PRENDERIA_TOKEN_FILE", "")
	if tokenFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		tokenFile = filepath.Join(dir, "prenderia", "token")
	}

	return &ClientConfig{
		AppMode:   appMode,
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		BaseURL:   strings.TrimRight(getEnv("API_BASE_URL", DefaultBaseURL), "/"),
		Timeout:   timeout,
		TokenFile: tokenFile,
	}, nil
}

// loadAppMode reads APP_MODE (default "dev"), trimming spaces for Windows compatibility
func loadAppMode() (string, error) {
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return "", fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}
	return appMode, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "prenderia"),

		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := modePrefix(mode)

	accessMins, err := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "480"))
	if err != nil || accessMins <= 0 {
		accessMins = 480
	}

	return JWTConfig{
		Secret:          getEnv(prefix+"JWT_SECRET", "default_secret"),
		AccessTokenMins: accessMins,
	}
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads a positive integer, falling back to defaultValue
func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// getEnvDuration reads a Go duration such as "30m", falling back to defaultValue
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:5173"
	}
	return origins
}
