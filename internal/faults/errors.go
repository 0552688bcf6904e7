package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigMissing       = errors.New("configuration missing")
	ErrConfigInvalid       = errors.New("invalid configuration")
	ErrFeedUnavailable     = errors.New("feed unavailable")
	ErrFeedFormat          = errors.New("feed format error")
	ErrAssetUnavailable    = errors.New("asset unavailable")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrStorageWrite        = errors.New("storage write error")
	ErrSelectionOutOfRange = errors.New("selection out of range")
	ErrNoPicturesAvailable = errors.New("no pictures available")
	ErrBackendUnavailable  = errors.New("wallpaper backend unavailable")
	ErrAssignFailed        = errors.New("wallpaper assignment failed")
	ErrLocked              = errors.New("another instance is running")
)

// Exit statuses returned by the CLI for each failure family.
const (
	ExitOK          = 0
	ExitGeneric     = 1
	ExitConfig      = 2
	ExitAcquisition = 3
	ExitStorage     = 4
	ExitSelection   = 5
	ExitBackend     = 6
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		if err == nil {
			return errors.New(detail)
		}
		return fmt.Errorf("%s: %w", detail, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrConfigMissing), errors.Is(err, ErrConfigInvalid):
		return ExitConfig
	case errors.Is(err, ErrFeedUnavailable), errors.Is(err, ErrFeedFormat), errors.Is(err, ErrAssetUnavailable):
		return ExitAcquisition
	case errors.Is(err, ErrStorageUnavailable), errors.Is(err, ErrStorageWrite):
		return ExitStorage
	case errors.Is(err, ErrSelectionOutOfRange), errors.Is(err, ErrNoPicturesAvailable):
		return ExitSelection
	case errors.Is(err, ErrBackendUnavailable), errors.Is(err, ErrAssignFailed):
		return ExitBackend
	default:
		return ExitGeneric
	}
}

// IsUserError reports whether err stems from a user-supplied selection rather
// than an environmental fault.
func IsUserError(err error) bool {
	return errors.Is(err, ErrSelectionOutOfRange) || errors.Is(err, ErrNoPicturesAvailable)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failed"
	}
	return strings.Join(parts, ": ")
}
