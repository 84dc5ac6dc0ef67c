package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment values recognized for the -e flag. Anything other than
// development enforces TLS verification on the database connection.
const EnvDevelopment = "development"

type Config struct {
	Port        int
	DatabaseURL string
	Environment string
}

// Development reports whether the server runs in local development mode.
func (c Config) Development() bool {
	return c.Environment == EnvDevelopment
}

// ParseFlags builds the configuration from CLI flags with environment
// variable fallback. A .env file in the working directory is loaded first
// when present.
func ParseFlags(args []string) (Config, error) {
	// Ignore a missing .env; explicit env vars and flags still apply.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("petition", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.Environment, "e", "", "Environment (development or production)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.Environment == "" {
		cfg.Environment = os.Getenv("ENVIRONMENT")
		if cfg.Environment == "" {
			cfg.Environment = EnvDevelopment
		}
	}

	return cfg, nil
}
