package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeFeed()
	c.normalizeDisplay()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(PictureDirEnv); ok && strings.TrimSpace(value) != "" {
		c.Paths.PictureDir = strings.TrimSpace(value)
	}
	var err error
	if c.Paths.PictureDir, err = expandPath(strings.TrimSpace(c.Paths.PictureDir)); err != nil {
		return fmt.Errorf("paths.picture_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeFeed() {
	c.Feed.BaseURL = strings.TrimRight(strings.TrimSpace(c.Feed.BaseURL), "/")
	if c.Feed.BaseURL == "" {
		c.Feed.BaseURL = defaultFeedBaseURL
	}
	if c.Feed.TimeoutSeconds == 0 {
		c.Feed.TimeoutSeconds = defaultFeedTimeoutSeconds
	}
	c.Feed.UserAgent = strings.TrimSpace(c.Feed.UserAgent)
	if c.Feed.UserAgent == "" {
		c.Feed.UserAgent = defaultFeedUserAgent
	}
}

func (c *Config) normalizeDisplay() {
	c.Display.Backend = strings.ToLower(strings.TrimSpace(c.Display.Backend))
	if c.Display.Backend == "" {
		c.Display.Backend = defaultDisplayBackend
	}
	c.Display.XfconfChannel = strings.TrimSpace(c.Display.XfconfChannel)
	if c.Display.XfconfChannel == "" {
		c.Display.XfconfChannel = defaultXfconfChannel
	}
	connectors := make([]string, 0, len(c.Display.Connectors))
	for _, connector := range c.Display.Connectors {
		if trimmed := strings.TrimSpace(connector); trimmed != "" {
			connectors = append(connectors, trimmed)
		}
	}
	if len(connectors) == 0 {
		connectors = defaultConnectors()
	}
	c.Display.Connectors = connectors
	c.Display.SlotSuffix = strings.TrimSpace(c.Display.SlotSuffix)
	if c.Display.SlotSuffix == "" {
		c.Display.SlotSuffix = defaultSlotSuffix
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
