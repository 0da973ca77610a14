package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

var ErrMissingWebhookURL = errors.New("DISCORD_WEBHOOK_URL is not defined")

type Config struct {
	DiscordWebhookURL string        `env:"DISCORD_WEBHOOK_URL"`
	DiscordUsername   string        `env:"DISCORD_USERNAME"`
	DiscordAvatarURL  string        `env:"DISCORD_AVATAR_URL"`
	DeliveryTimeout   time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"0s"`

	Port     string `env:"PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`

	ProxyURL  string `env:"PROXY_URL"`
	ProxyType string `env:"PROXY_TYPE" envDefault:"http"`
	ProxyUser string `env:"PROXY_USER"`
	ProxyPass string `env:"PROXY_PASS"`

	// Path prefix the platform mounts the function under.
	FunctionMount string `env:"FUNCTION_MOUNT" envDefault:"/.netlify/functions/discord-notify"`
}

// Load reads an optional .env file (or the given files) and then parses the
// process environment. Values already set in the environment win over the file.
func Load(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	switch cfg.ProxyType {
	case "http", "socks5":
	default:
		return nil, fmt.Errorf("unsupported PROXY_TYPE %q", cfg.ProxyType)
	}

	return cfg, nil
}

// Validate reports configuration that makes delivery impossible.
func (c *Config) Validate() error {
	if c.DiscordWebhookURL == "" {
		return ErrMissingWebhookURL
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
