package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shelf/internal/config"
	"shelf/internal/logging"
)

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	component := logging.NewComponentLogger(logger, "resolver")
	component.Info("cover selected", logging.String("source", "Google Books"), logging.Int("score", 120))

	line := buf.String()
	if !strings.Contains(line, "INFO resolver: cover selected") {
		t.Fatalf("unexpected line %q", line)
	}
	if !strings.Contains(line, "score=120") || !strings.Contains(line, `source="Google Books"`) {
		t.Fatalf("missing attrs in %q", line)
	}
}

func TestJSONHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", logging.Bool("ok", true))
	line := buf.String()
	for _, fragment := range []string{`"msg":"hello"`, `"ok":true`, `"level":"info"`} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("missing %s in %q", fragment, line)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected info suppressed, got %q", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "WARN") {
		t.Fatalf("expected warn emitted, got %q", buf.String())
	}
}

func TestNewFromConfigTeesIntoLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "info"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("store opened", logging.String("path", "shelf.db"))

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "shelf.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"store opened"`) {
		t.Fatalf("log line not teed into file: %q", data)
	}
}

func TestNewFromConfigHonorsConfiguredLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "warn"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("suppressed")
	logger.Warn("emitted")

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "shelf.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "suppressed") {
		t.Fatalf("info line leaked through warn level: %q", data)
	}
	if !strings.Contains(string(data), "emitted") {
		t.Fatalf("warn line missing: %q", data)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
