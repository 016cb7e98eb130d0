package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/RKBattleSLoth/DreamWeaver/internal/utils"
)

// Config holds the application configuration.
// Secret fields carry no envconfig tag; they are read from Docker secret
// files in LoadConfig.
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"debug"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	// Database (PostgreSQL)
	DBHost        string        `envconfig:"DB_HOST" required:"true"`
	DBPort        string        `envconfig:"DB_PORT" required:"true"`
	DBUser        string        `envconfig:"DB_USER" required:"true"`
	DBName        string        `envconfig:"DB_NAME" required:"true"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int           `envconfig:"DB_MAX_CONNS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_IDLE_TIMEOUT" default:"5m"`
	// Secret field WITHOUT envconfig tag
	DBPassword string

	// Redis (token storage and rate limiting)
	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`
	// Secret field WITHOUT envconfig tag (optional)
	RedisPassword string

	// JWT settings - secret fields WITHOUT envconfig tags
	JWTSecret       string
	PasswordPepper  string
	AccessTokenTTL  time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL time.Duration `envconfig:"JWT_REFRESH_TOKEN_TTL" default:"168h"` // 7 days

	// AI text generation
	AIClientType string        `envconfig:"AI_CLIENT_TYPE" default:"openai"` // openai | ollama
	AIBaseURL    string        `envconfig:"AI_BASE_URL" default:"https://openrouter.ai/api/v1"`
	AIModel      string        `envconfig:"AI_MODEL" default:"anthropic/claude-3-haiku"`
	AITimeout    time.Duration `envconfig:"AI_TIMEOUT" default:"120s"`
	// Secret field WITHOUT envconfig tag (required for openai client type)
	AIAPIKey string

	// Generation worker
	GenerationTimeout         time.Duration `envconfig:"GENERATION_TIMEOUT" default:"3m"`
	GenerationShutdownTimeout time.Duration `envconfig:"GENERATION_SHUTDOWN_TIMEOUT" default:"30s"`

	// Illustrations (optional; disabled when the server URL is empty)
	ImageServerURL     string        `envconfig:"IMAGE_SERVER_URL" default:""`
	ImageServerTimeout time.Duration `envconfig:"IMAGE_SERVER_TIMEOUT" default:"60s"`
	ImageSavePath      string        `envconfig:"IMAGE_SAVE_PATH" default:"/data/images"`
	ImagePublicBaseURL string        `envconfig:"IMAGE_PUBLIC_BASE_URL" default:""`

	// Rate limiting
	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"10"`

	// CORS settings
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// ImagesEnabled reports whether illustration generation is configured.
func (c *Config) ImagesEnabled() bool {
	return c.ImageServerURL != "" && c.ImagePublicBaseURL != ""
}

// LoadConfig loads configuration from environment variables and secrets.
func LoadConfig(envFilePath string) (*Config, error) {
	if _, err := os.Stat(envFilePath); err == nil {
		if err := godotenv.Load(envFilePath); err != nil {
			log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
		} else {
			log.Printf("Loaded configuration from %s", envFilePath)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	// Required secrets
	var loadErr error
	cfg.DBPassword, loadErr = utils.ReadSecret("db_password")
	if loadErr != nil {
		return nil, loadErr
	}

	cfg.JWTSecret, loadErr = utils.ReadSecret("jwt_secret")
	if loadErr != nil {
		return nil, loadErr
	}

	cfg.PasswordPepper, loadErr = utils.ReadSecret("password_pepper")
	if loadErr != nil {
		return nil, loadErr
	}

	// Optional secrets
	if redisPass, err := utils.ReadSecret("redis_password"); err == nil {
		cfg.RedisPassword = redisPass
		log.Println("Redis password loaded from secret.")
	} else {
		log.Printf("Optional secret 'redis_password' not found or failed to read: %v. Assuming no password.", err)
	}

	if aiKey, err := utils.ReadSecret("ai_api_key"); err == nil {
		cfg.AIAPIKey = aiKey
		log.Println("AI API key loaded from secret.")
	} else if strings.EqualFold(cfg.AIClientType, "openai") {
		return nil, fmt.Errorf("ai_api_key secret is required for the openai client type: %w", err)
	}

	log.Println("Configuration loaded successfully (secrets read from files).")
	return &cfg, nil
}
