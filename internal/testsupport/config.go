package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"bingpaper/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.PictureDir = filepath.Join(base, "pictures")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Feed.TimeoutSeconds = 5
	cfgVal.Feed.UserAgent = "bingpaper-test"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithFeedURL points the feed client at a test server.
func WithFeedURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Feed.BaseURL = url
	}
}

// WithBackend overrides the display backend selector.
func WithBackend(kind string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Display.Backend = kind
	}
}

// WithPictures creates the picture directory and writes a JPEG fixture for
// each of names.
func WithPictures(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if err := os.MkdirAll(b.cfg.Paths.PictureDir, 0o755); err != nil {
			b.t.Fatalf("mkdir picture dir: %v", err)
		}
		for _, name := range names {
			WritePicture(b.t, filepath.Join(b.cfg.Paths.PictureDir, name))
		}
	}
}

// WithStubbedBinary installs a shell script named name ahead of everything
// else on PATH. body runs under /bin/sh with the command's arguments.
func WithStubbedBinary(name, body string) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := "#!/bin/sh\n" + body + "\n"
		if err := os.WriteFile(filepath.Join(binDir, name), []byte(script), 0o755); err != nil {
			b.t.Fatalf("write stub %s: %v", name, err)
		}
		b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.PictureDir)
}
