package config

import (
	"errors"
	"fmt"
	"net/url"

	"bingpaper/internal/faults"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateFeed(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.PictureDir == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/bingpaper/config.toml"
		}
		return fmt.Errorf("%w: picture directory is required. Export %s or set paths.picture_dir in %s (create with 'bingpaper config init')",
			faults.ErrConfigMissing, PictureDirEnv, defaultPath)
	}
	return nil
}

func (c *Config) validateFeed() error {
	parsed, err := url.Parse(c.Feed.BaseURL)
	if err != nil {
		return fmt.Errorf("feed.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("feed.base_url must be an http(s) URL, got %q", c.Feed.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("feed.base_url must include a host, got %q", c.Feed.BaseURL)
	}
	if c.Feed.TimeoutSeconds < 0 {
		return errors.New("feed.timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateDisplay() error {
	switch c.Display.Backend {
	case "auto", "xfconf":
		return nil
	default:
		return fmt.Errorf("display.backend: unsupported value %q (expected auto or xfconf)", c.Display.Backend)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
