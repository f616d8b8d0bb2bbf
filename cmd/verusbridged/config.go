package main

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the bridge daemon configuration, read from the environment.
type Config struct {
	ListenAddr string `env:"VERUSBRIDGE_LISTEN_ADDR" env-default:"127.0.0.1:8000"`

	NodeHost     string        `env:"VERUSBRIDGE_NODE_HOST" env-default:"127.0.0.1"`
	NodePort     int           `env:"VERUSBRIDGE_NODE_PORT" env-default:"27486"`
	NodeTLS      bool          `env:"VERUSBRIDGE_NODE_TLS" env-default:"false"`
	NodeUser     string        `env:"VERUSBRIDGE_NODE_USER"`
	NodePassword string        `env:"VERUSBRIDGE_NODE_PASSWORD"`
	NodeTimeout  time.Duration `env:"VERUSBRIDGE_NODE_TIMEOUT" env-default:"30s"`

	CallTimeout time.Duration `env:"VERUSBRIDGE_CALL_TIMEOUT" env-default:"60s"`
	MaxAttempts int           `env:"VERUSBRIDGE_MAX_ATTEMPTS" env-default:"3"`

	RateLimit int  `env:"VERUSBRIDGE_RATE_LIMIT" env-default:"50"`
	RateBurst int  `env:"VERUSBRIDGE_RATE_BURST" env-default:"100"`
	CORS      bool `env:"VERUSBRIDGE_CORS" env-default:"true"`

	ShutdownTimeout time.Duration `env:"VERUSBRIDGE_SHUTDOWN_TIMEOUT" env-default:"30s"`
	LogLevel        string        `env:"VERUSBRIDGE_LOG_LEVEL" env-default:"info"`
}

// LoadConfig reads configuration from a .env file when present, then the
// environment.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; the environment alone is a complete source.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
