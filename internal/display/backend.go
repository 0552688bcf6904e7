package display

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bingpaper/internal/deps"
)

// Output is an opaque, platform-specific wallpaper slot for one monitor.
type Output string

// Backend enumerates wallpaper outputs and assigns pictures to them. Callers
// address outputs by their position in the slice Outputs returns.
type Backend interface {
	Name() string
	Outputs(ctx context.Context) ([]Output, error)
	Current(ctx context.Context, output Output) (string, error)
	// Set reports the platform's success signal. A non-nil error means the
	// wallpaper mechanism itself could not be reached.
	Set(ctx context.Context, output Output, path string) (bool, error)
	// Requirements lists the external programs the backend shells out to.
	Requirements() []deps.Requirement
}

const (
	KindAuto   = "auto"
	KindXfconf = "xfconf"
)

// Options selects and configures a backend.
type Options struct {
	Kind       string
	Channel    string
	Connectors []string
	SlotSuffix string
	Runner     Runner
	Logger     *slog.Logger
}

// New returns the backend for this platform, or the xfconf backend when
// explicitly requested.
func New(opts Options) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Kind)) {
	case "", KindAuto:
		return platformDefault(opts), nil
	case KindXfconf:
		return NewXfconf(opts), nil
	default:
		return nil, fmt.Errorf("unknown display backend %q", opts.Kind)
	}
}
