//go:build windows

package display

import (
	"context"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"

	"bingpaper/internal/deps"
	"bingpaper/internal/faults"
	"bingpaper/internal/logging"
)

const (
	spiGetDeskWallpaper  = 0x0073
	spiSetDeskWallpaper  = 0x0014
	spifUpdateIniFile    = 0x01
	spifSendWinIniChange = 0x02
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

// Windows applies one wallpaper to the whole desktop with
// SystemParametersInfoW. It exposes a single synthetic output.
type Windows struct {
	logger *slog.Logger
}

var _ Backend = (*Windows)(nil)

// NewWindows builds the Windows backend.
func NewWindows(opts Options) *Windows {
	return &Windows{logger: logging.NewComponentLogger(opts.Logger, "display")}
}

func (w *Windows) Name() string { return "windows" }

func (w *Windows) Requirements() []deps.Requirement { return nil }

func (w *Windows) Outputs(context.Context) ([]Output, error) {
	return []Output{SingleOutput}, nil
}

// Current asks the shell for the active wallpaper path.
func (w *Windows) Current(context.Context, Output) (string, error) {
	if err := procSystemParametersInfoW.Find(); err != nil {
		return "", faults.Wrap(faults.ErrBackendUnavailable, "display", "load user32", "SystemParametersInfoW", err)
	}
	buf := make([]uint16, windows.MAX_PATH)
	ret, _, callErr := procSystemParametersInfoW.Call(
		spiGetDeskWallpaper,
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&buf[0])),
		0,
	)
	if ret == 0 {
		return "", faults.Wrap(faults.ErrBackendUnavailable, "display", "read wallpaper", "SystemParametersInfoW", callErr)
	}
	return windows.UTF16ToString(buf), nil
}

// Set applies path and persists it to the user profile, notifying other
// processes. Only the documented success value counts as success.
func (w *Windows) Set(_ context.Context, _ Output, path string) (bool, error) {
	if err := procSystemParametersInfoW.Find(); err != nil {
		return false, faults.Wrap(faults.ErrBackendUnavailable, "display", "load user32", "SystemParametersInfoW", err)
	}
	widePath, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, faults.Wrap(faults.ErrAssignFailed, "display", "encode path", path, err)
	}
	ret, _, callErr := procSystemParametersInfoW.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(widePath)),
		spifUpdateIniFile|spifSendWinIniChange,
	)
	if ret == 1 {
		return true, nil
	}
	logging.WarnWithContext(w.logger, "SystemParametersInfoW rejected wallpaper", "windows_set_failed",
		logging.String("path", path),
		logging.Int64("return_code", int64(ret)),
		logging.Error(callErr),
		logging.String(logging.FieldImpact, "wallpaper unchanged"))
	return false, nil
}
