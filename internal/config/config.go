package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

type Config struct {
	Addr           string
	AllowedOrigins string
	LogDev         bool
}

func defaults() Config {
	return Config{
		Addr:           ":3000",
		AllowedOrigins: "http://localhost:5173",
	}
}

// Load resolves configuration from defaults, then the environment, then
// command-line flags, each overriding the previous layer.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := defaults()

	if v := getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = v
	}
	if v := getenv("LOG_DEV"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("LOG_DEV: %w", err)
		}
		cfg.LogDev = dev
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.AllowedOrigins, "allowed-origins", cfg.AllowedOrigins, "comma separated CORS origins")
	fs.BoolVar(&cfg.LogDev, "log-dev", cfg.LogDev, "human readable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("listen address must not be empty")
	}
	return cfg, nil
}
