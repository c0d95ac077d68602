// Package config loads server settings from command-line flags with
// environment variable fallbacks.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"
)

// Supported database drivers
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// ErrUnknownDriver indicates an unsupported --driver value
var ErrUnknownDriver = errors.New("unknown database driver")

// Config holds server settings
type Config struct {
	Addr            string
	Driver          string
	DSN             string
	RedisAddr       string
	APIKey          string
	WriteRateLimit  int
	ShutdownTimeout time.Duration
	ShowVersion     bool
}

// Load parses args (without the program name); unset flags fall back to
// STOCKTAKE_* variables read through getenv, then to defaults.
func Load(args []string, getenv func(string) string) (*Config, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	rateDefault := 120
	if v := getenv("STOCKTAKE_WRITE_RATE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid STOCKTAKE_WRITE_RATE %q", v)
		}
		rateDefault = n
	}

	cfg := &Config{}
	fs := flag.NewFlagSet("stocktake-server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", env("STOCKTAKE_ADDR", ":8080"), "HTTP listen address")
	fs.StringVar(&cfg.Driver, "driver", env("STOCKTAKE_DB_DRIVER", DriverSQLite), "database driver: sqlite or mysql")
	fs.StringVar(&cfg.DSN, "dsn", env("STOCKTAKE_DB_DSN", "stocktake.db"), "database file path (sqlite) or DSN (mysql)")
	fs.StringVar(&cfg.RedisAddr, "redis", env("STOCKTAKE_REDIS_ADDR", ""), "Redis address for change fan-out (empty = in-process)")
	fs.StringVar(&cfg.APIKey, "api-key", env("STOCKTAKE_API_KEY", ""), "require this bearer key on API requests (empty = open)")
	fs.IntVar(&cfg.WriteRateLimit, "write-rate", rateDefault, "max write requests per client per minute")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the combination of settings
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite, DriverMySQL:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Driver)
	}
	if c.DSN == "" {
		return errors.New("database DSN is required")
	}
	if c.WriteRateLimit <= 0 {
		return errors.New("write rate must be positive")
	}
	return nil
}
