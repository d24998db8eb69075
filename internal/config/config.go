package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// GoogleBooks contains configuration for the book catalog API.
type GoogleBooks struct {
	APIKey     string `toml:"api_key"`
	BaseURL    string `toml:"base_url"`
	MaxResults int    `toml:"max_results"`
}

// TMDB contains configuration for The Movie Database API, used for
// films and series.
type TMDB struct {
	APIKey       string `toml:"api_key"`
	BaseURL      string `toml:"base_url"`
	ImageBaseURL string `toml:"image_base_url"`
	Language     string `toml:"language"`
}

// RAWG contains configuration for the RAWG videogame catalog API.
type RAWG struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// OpenAlex contains configuration for the OpenAlex citation graph API.
type OpenAlex struct {
	BaseURL string `toml:"base_url"`
	// MailTo joins the polite pool when set; OpenAlex needs no key.
	MailTo string `toml:"mailto"`
}

// OpenLibrary contains configuration for the open catalog lookup.
type OpenLibrary struct {
	BaseURL       string `toml:"base_url"`
	CoversBaseURL string `toml:"covers_base_url"`
}

// Placeholder contains configuration for synthesized cover images.
// Services is a preference list; only the first entry is ever used.
type Placeholder struct {
	Services []string `toml:"services"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for shelf.
//
// Configuration sections by subsystem:
//   - Paths: database and log directories
//   - GoogleBooks: book cover and metadata lookup
//   - TMDB: film and series metadata
//   - RAWG: videogame metadata
//   - OpenAlex: paper metadata
//   - OpenLibrary: open catalog cover fallback
//   - Placeholder: synthesized cover services
//   - Logging: log format and level
type Config struct {
	Paths       Paths       `toml:"paths"`
	GoogleBooks GoogleBooks `toml:"google_books"`
	TMDB        TMDB        `toml:"tmdb"`
	RAWG        RAWG        `toml:"rawg"`
	OpenAlex    OpenAlex    `toml:"openalex"`
	OpenLibrary OpenLibrary `toml:"openlibrary"`
	Placeholder Placeholder `toml:"placeholder"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path of the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/shelf/config.toml")
}

// Load locates, parses, and validates a configuration file. The
// returned config has all path fields expanded and API keys resolved
// from the environment where the file leaves them blank.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("shelf.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	for _, field := range []*string{&c.Paths.DataDir, &c.Paths.LogDir} {
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	// API keys left blank in the file fall back to the environment so
	// the config file never has to hold secrets.
	envFallback(&c.GoogleBooks.APIKey, "GOOGLE_BOOKS_API_KEY")
	envFallback(&c.TMDB.APIKey, "TMDB_API_KEY")
	envFallback(&c.RAWG.APIKey, "RAWG_API_KEY")

	if c.GoogleBooks.MaxResults <= 0 {
		c.GoogleBooks.MaxResults = defaultGoogleBooksMaxResults
	}
	return nil
}

func envFallback(field *string, name string) {
	if strings.TrimSpace(*field) != "" {
		return
	}
	if value, ok := os.LookupEnv(name); ok {
		*field = strings.TrimSpace(value)
	}
}

// EnsureDirectories creates the directories shelf writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// DatabasePath returns the location of the entry database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.DataDir, "shelf.db")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
