package httpserver

import (
	"database/sql"
	"errors"

	"assistant-srv/config"
	"assistant-srv/pkg/discord"
	"assistant-srv/pkg/gemini"
	pkgJWT "assistant-srv/pkg/jwt"
	"assistant-srv/pkg/kafka"
	"assistant-srv/pkg/log"
	pkgRedis "assistant-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Service Configuration
	config *config.Config

	// Storage Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration
	producer kafka.IProducer

	// LLM Configuration
	geminiClient gemini.IGemini

	// Authentication & Security Configuration
	jwtManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Service Configuration
	Config *config.Config

	// Storage Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	Producer kafka.IProducer

	// LLM Configuration
	GeminiClient gemini.IGemini

	// Authentication & Security Configuration
	JWTManager pkgJWT.IManager

	// Monitoring & Notification Configuration (optional)
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:          gin.New(),
		l:            logger,
		host:         cfg.Host,
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		config:       cfg.Config,
		postgresDB:   cfg.PostgresDB,
		redisClient:  cfg.RedisClient,
		producer:     cfg.Producer,
		geminiClient: cfg.GeminiClient,
		jwtManager:   cfg.JWTManager,
		discord:      cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	return nil
}
