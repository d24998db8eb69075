package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable. Provider API keys are
// deliberately not required: a missing key only disables that provider
// and the cover resolver degrades to its fallbacks.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateProviders(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateProviders() error {
	if strings.TrimSpace(c.GoogleBooks.BaseURL) == "" {
		return errors.New("google_books.base_url must be set")
	}
	if strings.TrimSpace(c.TMDB.BaseURL) == "" {
		return errors.New("tmdb.base_url must be set")
	}
	if strings.TrimSpace(c.RAWG.BaseURL) == "" {
		return errors.New("rawg.base_url must be set")
	}
	if strings.TrimSpace(c.OpenAlex.BaseURL) == "" {
		return errors.New("openalex.base_url must be set")
	}
	if strings.TrimSpace(c.OpenLibrary.BaseURL) == "" || strings.TrimSpace(c.OpenLibrary.CoversBaseURL) == "" {
		return errors.New("openlibrary.base_url and openlibrary.covers_base_url must be set")
	}
	if len(c.Placeholder.Services) == 0 {
		return errors.New("placeholder.services must list at least one service")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return errors.New("logging.format must be console or json")
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be debug, info, warn, or error")
	}
	return nil
}
