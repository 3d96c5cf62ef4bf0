package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Gemini - LLM
	Gemini GeminiConfig

	// Backend services
	Intent  IntentConfig
	Search  SearchConfig
	Listing ListingConfig

	// PostgreSQL - Conversation audit log
	Postgres PostgresConfig

	// Redis - Conversation state snapshots
	Redis RedisConfig

	// Kafka - Turn analytics events
	Kafka KafkaConfig

	// Loop tunables
	Resolution  ResolutionConfig
	Elicitation ElicitationConfig

	// JWT - Authentication
	JWT JWTConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level    string
	Mode     string
	Encoding string
}

// GeminiConfig is the configuration for Google Gemini (LLM). Same shape as pkg/gemini.GeminiConfig.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// IntentConfig is the configuration for the intent classification service.
type IntentConfig struct {
	URL string
}

// SearchConfig is the configuration for the property search gateway.
type SearchConfig struct {
	URL string
}

// ListingConfig is the configuration for the listing master service.
type ListingConfig struct {
	URL string
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ResolutionConfig tunes the search resolution loop.
type ResolutionConfig struct {
	SatisfiedThreshold float64
	MaxAttempts        int
}

// ElicitationConfig tunes the posting elicitation loop.
type ElicitationConfig struct {
	MaxQuestions int
}

// JWTConfig is used to verify tokens (same secret/issuer as auth service). This service does not issue tokens.
type JWTConfig struct {
	Issuer    string
	SecretKey string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("assistant-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/assistant/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")

	// Gemini - LLM
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")

	// Backend services
	cfg.Intent.URL = viper.GetString("intent.url")
	cfg.Search.URL = viper.GetString("search.url")
	cfg.Listing.URL = viper.GetString("listing.url")

	// PostgreSQL - Conversation audit log
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis - Conversation state snapshots
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Turn analytics events (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Loop tunables
	cfg.Resolution.SatisfiedThreshold = viper.GetFloat64("resolution.satisfied_threshold")
	cfg.Resolution.MaxAttempts = viper.GetInt("resolution.max_attempts")
	cfg.Elicitation.MaxQuestions = viper.GetInt("elicitation.max_questions")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")

	// Gemini
	viper.SetDefault("gemini.model", "gemini-2.0-flash")

	// Backend services
	viper.SetDefault("intent.url", "http://intent-srv:8080")
	viper.SetDefault("search.url", "http://search-srv:8080")
	viper.SetDefault("listing.url", "http://listing-srv:8080")

	// PostgreSQL (schema: assistant)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "assistant")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Kafka (topic: assistant.turns)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "assistant.turns")

	// Loop tunables (zero means library default)
	viper.SetDefault("resolution.satisfied_threshold", 0.6)
	viper.SetDefault("resolution.max_attempts", 2)
	viper.SetDefault("elicitation.max_questions", 2)

	// JWT
	viper.SetDefault("jwt.issuer", "smap-auth-service")
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}

	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}

	if cfg.Intent.URL == "" {
		return fmt.Errorf("intent.url is required")
	}
	if cfg.Search.URL == "" {
		return fmt.Errorf("search.url is required")
	}
	if cfg.Listing.URL == "" {
		return fmt.Errorf("listing.url is required")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	return nil
}
