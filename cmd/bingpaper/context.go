package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"bingpaper/internal/assign"
	"bingpaper/internal/config"
	"bingpaper/internal/display"
	"bingpaper/internal/feed"
	"bingpaper/internal/logging"
	"bingpaper/internal/picstore"
)

type commandContext struct {
	configFlag string

	// newBackend builds the wallpaper backend; tests replace it.
	newBackend func(display.Options) (display.Backend, error)

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logOnce sync.Once
	logger  *slog.Logger
	logErr  error
	runID   string
}

func newCommandContext() *commandContext {
	return &commandContext{
		newBackend: display.New,
		runID:      logging.NewRunID(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger(stderr io.Writer) (*slog.Logger, error) {
	c.logOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logErr = err
			return
		}
		c.logger, c.logErr = logging.NewFromConfig(cfg, c.runID, stderr)
	})
	return c.logger, c.logErr
}

// components wires the store, feed client, backend and assignment service
// for one invocation.
type components struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *picstore.Store
	backend display.Backend
	service *assign.Service
}

func (c *commandContext) components(cmd *cobra.Command) (*components, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	store, err := picstore.Open(cfg.Paths.PictureDir, logger)
	if err != nil {
		return nil, err
	}

	client, err := feed.New(cfg.Feed.BaseURL, store,
		feed.WithTimeout(cfg.FeedTimeout()),
		feed.WithUserAgent(cfg.Feed.UserAgent),
		feed.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	backend, err := c.newBackend(display.Options{
		Kind:       cfg.Display.Backend,
		Channel:    cfg.Display.XfconfChannel,
		Connectors: cfg.Display.Connectors,
		SlotSuffix: cfg.Display.SlotSuffix,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("display backend: %w", err)
	}

	return &components{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		backend: backend,
		service: assign.NewService(client, store, backend, assign.WithLogger(logger)),
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
