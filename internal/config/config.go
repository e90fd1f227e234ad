// Package config loads vista's optional config file from
// ~/.config/vista/config.toml, falling back to defaults when missing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the tunables the demo exposes.
type Config struct {
	Currency        string        // price tag on generated offers
	SessionPath     string        // durable session file
	SearchDelay     time.Duration // simulated search latency
	LoginDelay      time.Duration // simulated login latency
	AdminDelay      time.Duration // simulated admin login latency
	NewsletterDelay time.Duration // simulated newsletter signup latency
	Seed            int64         // generator seed; 0 means time-seeded
}

const (
	defaultConfigPath = "~/.config/vista/config.toml"
	defaultCurrency   = "PKR"

	defaultSearchDelayMS     = 1500
	defaultLoginDelayMS      = 1500
	defaultAdminDelayMS      = 1000
	defaultNewsletterDelayMS = 1500
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Currency:        defaultCurrency,
		SearchDelay:     defaultSearchDelayMS * time.Millisecond,
		LoginDelay:      defaultLoginDelayMS * time.Millisecond,
		AdminDelay:      defaultAdminDelayMS * time.Millisecond,
		NewsletterDelay: defaultNewsletterDelayMS * time.Millisecond,
	}
}

// Load locates and parses the config file. A missing file yields defaults;
// a present but unparseable file is an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Currency          string `toml:"currency"`
		SessionPath       string `toml:"session_path"`
		SearchDelayMS     int    `toml:"search_delay_ms"`
		LoginDelayMS      int    `toml:"login_delay_ms"`
		AdminDelayMS      int    `toml:"admin_delay_ms"`
		NewsletterDelayMS int    `toml:"newsletter_delay_ms"`
		Seed              int64  `toml:"seed"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if c := strings.TrimSpace(raw.Currency); c != "" {
		cfg.Currency = c
	}
	cfg.SessionPath = strings.TrimSpace(raw.SessionPath)
	if raw.SearchDelayMS > 0 {
		cfg.SearchDelay = time.Duration(raw.SearchDelayMS) * time.Millisecond
	}
	if raw.LoginDelayMS > 0 {
		cfg.LoginDelay = time.Duration(raw.LoginDelayMS) * time.Millisecond
	}
	if raw.AdminDelayMS > 0 {
		cfg.AdminDelay = time.Duration(raw.AdminDelayMS) * time.Millisecond
	}
	if raw.NewsletterDelayMS > 0 {
		cfg.NewsletterDelay = time.Duration(raw.NewsletterDelayMS) * time.Millisecond
	}
	cfg.Seed = raw.Seed

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
