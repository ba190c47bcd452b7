package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// DatabaseName is the portal's fixed database name.
const DatabaseName = "video_portal"

// Config is the complete service configuration, parsed from environment
// variables. Every field has a sane local-development default.
type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Token   TokenConfig
	Logging LoggingConfig

	// UploadRoot is the directory stored extract paths resolve against.
	UploadRoot string `env:"UPLOAD_ROOT" envDefault:"./uploads"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"PORT"             envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"60s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT"     envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// MongoConfig holds the document store connection settings.
type MongoConfig struct {
	URI string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
}

// TokenConfig holds session token settings.
type TokenConfig struct {
	Secret    string        `env:"TOKEN_SECRET"     envDefault:"dev-only-secret"`
	Issuer    string        `env:"TOKEN_ISSUER"     envDefault:"video-portal-api"`
	ExpiresIn time.Duration `env:"TOKEN_EXPIRES_IN" envDefault:"24h"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
