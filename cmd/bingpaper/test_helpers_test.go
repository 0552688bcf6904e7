package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"bingpaper/internal/config"
	"bingpaper/internal/deps"
	"bingpaper/internal/display"
	"bingpaper/internal/testsupport"
)

const (
	feedCopyright = "Swimming turtle, Okinawa/Japan (© Robert Mallon/Getty Images)"
	feedPicture   = "Swimming turtle, Okinawa_Japan.jpg"
)

type fakeBackend struct {
	mu       sync.Mutex
	outputs  []display.Output
	current  map[display.Output]string
	setOK    bool
	setCalls []string
}

func (f *fakeBackend) Name() string                     { return "fake" }
func (f *fakeBackend) Requirements() []deps.Requirement { return nil }

func (f *fakeBackend) Outputs(context.Context) ([]display.Output, error) {
	return f.outputs, nil
}

func (f *fakeBackend) Current(_ context.Context, output display.Output) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current[output], nil
}

func (f *fakeBackend) Set(_ context.Context, output display.Output, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls = append(f.setCalls, path)
	if f.setOK {
		f.current[output] = path
	}
	return f.setOK, nil
}

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	backend    *fakeBackend
	server     *httptest.Server
	assetHits  atomic.Int32
	lastQuery  atomic.Pointer[string]

	// realBackend leaves backend construction to display.New.
	realBackend bool
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.PictureDirEnv, "")

	env := &cliTestEnv{
		backend: &fakeBackend{
			outputs: []display.Output{"monitorDisplayPort-1", "monitorHDMI-A-0"},
			current: map[display.Output]string{},
			setOK:   true,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/HPImageArchive.aspx", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.RawQuery
		env.lastQuery.Store(&query)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"images":[{"url":"/th?id=OHR.Turtle_1920x1080.jpg","copyright":"` + feedCopyright + `"}]}`))
	})
	mux.HandleFunc("/th", func(w http.ResponseWriter, r *http.Request) {
		env.assetHits.Add(1)
		_, _ = w.Write(testsupport.PictureBytes())
	})
	env.server = httptest.NewServer(mux)
	t.Cleanup(env.server.Close)

	opts = append([]testsupport.ConfigOption{testsupport.WithFeedURL(env.server.URL)}, opts...)
	env.cfg = testsupport.NewConfig(t, opts...)
	env.configPath = filepath.Join(testsupport.BaseDir(env.cfg), "config.toml")
	writeTestConfig(t, env.configPath, env.cfg)
	return env
}

func (e *cliTestEnv) query() string {
	if q := e.lastQuery.Load(); q != nil {
		return *q
	}
	return ""
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	ctx := newCommandContext()
	if !env.realBackend {
		ctx.newBackend = func(display.Options) (display.Backend, error) {
			return env.backend, nil
		}
	}
	cmd := newRootCommandWithContext(ctx)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
