package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"shelf/internal/config"
	"shelf/internal/logging"
	"shelf/internal/metadata"
	"shelf/internal/store"
	"shelf/internal/tracker"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
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

// withTracker opens the store, wires the resolver and tracker, runs
// fn, and closes the store afterwards. The database lock is held for
// the duration of fn.
func (c *commandContext) withTracker(cmd *cobra.Command, fn func(ctx context.Context, tr *tracker.Tracker) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := c.buildLogger(cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	resolver, err := metadata.New(cfg, logger)
	if err != nil {
		return err
	}
	tr, err := tracker.New(st, resolver, logger)
	if err != nil {
		return err
	}
	return fn(cmd.Context(), tr)
}

// buildLogger honors the [logging] config section, teeing into the
// configured log directory. --verbose drops the level to debug.
func (c *commandContext) buildLogger(cfg *config.Config) (*slog.Logger, error) {
	logCfg := *cfg
	if c.verboseFlag != nil && *c.verboseFlag {
		logCfg.Logging.Level = "debug"
	}
	return logging.NewFromConfig(&logCfg)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
