package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

// Database type constants
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	StreamInterval time.Duration
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var streamMs int

	fs := flag.NewFlagSet("quickpoll", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&streamMs, "stream-interval", 0, "Live stream snapshot interval in milliseconds")

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

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:quickpoll.db"
	}

	if streamMs == 0 {
		if msStr := os.Getenv("STREAM_INTERVAL_MS"); msStr != "" {
			ms, err := strconv.Atoi(msStr)
			if err != nil {
				return Config{}, errors.New("invalid STREAM_INTERVAL_MS env variable")
			}
			streamMs = ms
		} else {
			streamMs = 1500 // default
		}
	}
	if streamMs < 0 {
		return Config{}, errors.New("stream interval must be positive")
	}
	cfg.StreamInterval = time.Duration(streamMs) * time.Millisecond

	return cfg, nil
}
