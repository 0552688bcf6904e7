package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"bingpaper/internal/deps"
	"bingpaper/internal/display"
)

const feedCheckTimeout = 10 * time.Second

// CheckFeed verifies that the image archive answers a metadata request. A
// single attempt is made.
func CheckFeed(ctx context.Context, baseURL, userAgent string) Result {
	const name = "Image feed"

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return Result{Name: name, Detail: "missing url"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, feedCheckTimeout)
	defer cancel()

	client := &http.Client{Timeout: feedCheckTimeout}
	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, base+"/HPImageArchive.aspx?format=js&idx=0&n=1", nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("request failed (%v)", err)}
	}
	if userAgent = strings.TrimSpace(userAgent); userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: summarizeError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Name: name, Detail: fmt.Sprintf("unexpected status (%d)", resp.StatusCode)}
	}
	return Result{Name: name, Passed: true, Detail: "Reachable"}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := checkAccess(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckBackendDeps evaluates the external programs the backend shells out to.
func CheckBackendDeps(backend display.Backend) []deps.Status {
	if backend == nil {
		return nil
	}
	return deps.CheckBinaries(backend.Requirements())
}

func summarizeError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out (feed unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "request timed out (feed unreachable)"
	}
	return err.Error()
}
