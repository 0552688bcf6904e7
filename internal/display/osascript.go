package display

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"bingpaper/internal/deps"
	"bingpaper/internal/faults"
	"bingpaper/internal/logging"
)

const osascriptBinary = "osascript"

// Osascript assigns one wallpaper to every desktop through AppleScript. It
// exposes a single synthetic output.
type Osascript struct {
	runner Runner
	logger *slog.Logger
}

var _ Backend = (*Osascript)(nil)

// NewOsascript builds the macOS backend.
func NewOsascript(opts Options) *Osascript {
	runner := opts.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Osascript{runner: runner, logger: logging.NewComponentLogger(opts.Logger, "display")}
}

func (o *Osascript) Name() string { return "osascript" }

func (o *Osascript) Requirements() []deps.Requirement {
	return []deps.Requirement{{
		Name:        "osascript",
		Command:     osascriptBinary,
		Description: "Required to set the macOS desktop picture",
	}}
}

func (o *Osascript) Outputs(context.Context) ([]Output, error) {
	return []Output{SingleOutput}, nil
}

func (o *Osascript) Current(ctx context.Context, _ Output) (string, error) {
	if _, err := o.runner.LookPath(osascriptBinary); err != nil {
		return "", faults.Wrap(faults.ErrBackendUnavailable, "display", "osascript", "osascript is not available", err)
	}
	script := `tell application "Finder" to get POSIX path of (get desktop picture as alias)`
	out, err := o.runner.Output(ctx, osascriptBinary, "-e", script)
	if err != nil {
		return "", faults.Wrap(faults.ErrBackendUnavailable, "display", "read desktop picture", "", err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (o *Osascript) Set(ctx context.Context, _ Output, path string) (bool, error) {
	if _, err := o.runner.LookPath(osascriptBinary); err != nil {
		return false, faults.Wrap(faults.ErrBackendUnavailable, "display", "osascript", "osascript is not available", err)
	}
	script := `tell application "System Events" to tell every desktop to set picture to ` + strconv.Quote(path)
	err := o.runner.Run(ctx, osascriptBinary, "-e", script)
	switch {
	case err == nil:
		return true, nil
	case isExitError(err):
		logging.WarnWithContext(o.logger, "osascript rejected wallpaper", "osascript_set_failed",
			logging.String("path", path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "allow the terminal to control System Events in Privacy settings"),
			logging.String(logging.FieldImpact, "wallpaper unchanged"))
		return false, nil
	default:
		return false, faults.Wrap(faults.ErrBackendUnavailable, "display", "set desktop picture", "", err)
	}
}
