package testsupport

import (
	"os"
	"testing"

	"bingpaper/internal/config"
	"bingpaper/internal/picstore"
)

// MustOpenStore opens the picture store for cfg, creating the directory.
func MustOpenStore(t testing.TB, cfg *config.Config) *picstore.Store {
	t.Helper()

	if err := os.MkdirAll(cfg.Paths.PictureDir, 0o755); err != nil {
		t.Fatalf("mkdir picture dir: %v", err)
	}
	store, err := picstore.Open(cfg.Paths.PictureDir, nil)
	if err != nil {
		t.Fatalf("picstore.Open: %v", err)
	}
	return store
}
