package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTokenSecret is the development fallback for ACCESS_TOKEN_SECRET.
const DefaultTokenSecret = "bistro_boss_dev_secret_change_me"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Auth    AuthConfig
	Payment PaymentConfig
	SeedDir string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

// StoreConfig selects and configures the storage backend.
type StoreConfig struct {
	Driver         string // "mongo" or "sqlite"
	MongoURI       string
	MongoDatabase  string
	SQLitePath     string
	AtomicPayments bool
}

// AuthConfig holds token settings.
type AuthConfig struct {
	TokenSecret []byte
	TokenTTL    time.Duration
	// GuardOpenRoutes puts guards on the promotion and cart deletion
	// endpoints, which are open by default.
	GuardOpenRoutes bool
}

// PaymentConfig holds payment processor credentials.
type PaymentConfig struct {
	SecretKey string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "5h"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}

	secret := getEnv("ACCESS_TOKEN_SECRET", getEnv("Access_token_secret", DefaultTokenSecret))

	return &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "5000"),
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Driver:         getEnv("STORE_DRIVER", "mongo"),
			MongoURI:       mongoURI(),
			MongoDatabase:  getEnv("MONGO_DATABASE", "BistroDB"),
			SQLitePath:     getEnv("SQLITE_PATH", "bistro.db"),
			AtomicPayments: getEnvAsBool("ATOMIC_PAYMENTS", true),
		},
		Auth: AuthConfig{
			TokenSecret:     []byte(secret),
			TokenTTL:        ttl,
			GuardOpenRoutes: getEnvAsBool("GUARD_OPEN_ROUTES", false),
		},
		Payment: PaymentConfig{
			SecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		},
		SeedDir: getEnv("SEED_DIR", ""),
	}, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "mongo", "sqlite":
	default:
		return fmt.Errorf("STORE_DRIVER must be mongo or sqlite, got %q", c.Store.Driver)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.IsProduction() && string(c.Auth.TokenSecret) == DefaultTokenSecret {
		return errors.New("ACCESS_TOKEN_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// mongoURI prefers MONGO_URI, then the Atlas credentials pair, then localhost.
func mongoURI() string {
	if uri := getEnv("MONGO_URI", ""); uri != "" {
		return uri
	}
	user, pass := getEnv("DB_USER", ""), getEnv("DB_PASS", "")
	if user == "" {
		return "mongodb://localhost:27017"
	}
	host := getEnv("MONGO_HOST", "cluster0.pizauii.mongodb.net")
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(user), url.QueryEscape(pass), host)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
