package preflight

import (
	"context"
	"fmt"
	"time"

	"bingpaper/internal/display"
)

// CheckDisplay enumerates the backend's outputs and reports how many can be
// addressed.
func CheckDisplay(ctx context.Context, backend display.Backend) Result {
	const name = "Display outputs"

	if backend == nil {
		return Result{Name: name, Detail: "Unknown"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	outputs, err := backend.Outputs(checkCtx)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if len(outputs) == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s reports no outputs", backend.Name())}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s: %d output(s)", backend.Name(), len(outputs))}
}
