package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Issuer is the iss claim stamped on access tokens.
	Issuer string `env:"PLATFORM_ISSUER" envDefault:"prajasetu"`

	// JWTSecret signs and verifies access tokens. Must be at least 32
	// bytes; there is no default on purpose.
	JWTSecret string `env:"PLATFORM_JWT_SECRET,notEmpty"`

	AccessTokenTTL time.Duration `env:"PLATFORM_ACCESS_TOKEN_TTL" envDefault:"168h"`

	DatabaseFile string `env:"PLATFORM_DATABASE_FILE" envDefault:"prajasetu.db"`

	// Bootstrap credentials for the super admin seeded into an empty
	// database. Ignored once any user exists.
	AdminName     string `env:"PLATFORM_ADMIN_NAME" envDefault:"Super Admin"`
	AdminMobile   string `env:"PLATFORM_ADMIN_MOBILE"`
	AdminPassword string `env:"PLATFORM_ADMIN_PASSWORD"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads configuration from the environment, with an optional
// .env file for local development.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}
