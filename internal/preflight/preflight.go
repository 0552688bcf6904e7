package preflight

import (
	"context"

	"bingpaper/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the filesystem and network checks for the given config.
// Backend checks need a constructed backend and are run separately.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	if cfg.Paths.PictureDir != "" {
		results = append(results, CheckDirectoryAccess("Picture directory", cfg.Paths.PictureDir))
	} else {
		results = append(results, Result{Name: "Picture directory", Detail: "not configured (set " + config.PictureDirEnv + ")"})
	}
	results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir))
	results = append(results, CheckFeed(ctx, cfg.Feed.BaseURL, cfg.Feed.UserAgent))

	return results
}
