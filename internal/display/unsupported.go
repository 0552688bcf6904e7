package display

import (
	"context"
	"runtime"

	"bingpaper/internal/deps"
	"bingpaper/internal/faults"
)

// SingleOutput names the only output of backends without per-monitor
// addressing.
const SingleOutput Output = "screen"

// Unsupported is used on platforms without a wallpaper mechanism.
type Unsupported struct{}

var _ Backend = Unsupported{}

func (Unsupported) Name() string { return "unsupported" }

func (Unsupported) Requirements() []deps.Requirement { return nil }

func (Unsupported) Outputs(context.Context) ([]Output, error) {
	return nil, unsupportedErr()
}

func (Unsupported) Current(context.Context, Output) (string, error) {
	return "", unsupportedErr()
}

func (Unsupported) Set(context.Context, Output, string) (bool, error) {
	return false, unsupportedErr()
}

func unsupportedErr() error {
	return faults.Wrap(faults.ErrBackendUnavailable, "display", "", "no wallpaper backend for "+runtime.GOOS, nil)
}
