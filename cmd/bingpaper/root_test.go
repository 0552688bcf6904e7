package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bingpaper/internal/config"
	"bingpaper/internal/faults"
	"bingpaper/internal/runlock"
	"bingpaper/internal/testsupport"
)

func TestNewFetchesOnceAndApplies(t *testing.T) {
	env := setupCLITestEnv(t)
	want := filepath.Join(env.cfg.Paths.PictureDir, feedPicture)

	out, _, err := runCLI(t, env, "--new")
	if err != nil {
		t.Fatalf("--new: %v", err)
	}
	if out != "screen0: "+want+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("picture not cached: %v", err)
	}

	out, _, err = runCLI(t, env, "-n", "-s", "1")
	if err != nil {
		t.Fatalf("second --new: %v", err)
	}
	requireContains(t, out, "screen1: "+want)

	if hits := env.assetHits.Load(); hits != 1 {
		t.Fatalf("expected one asset download, got %d", hits)
	}
	if len(env.backend.setCalls) != 2 {
		t.Fatalf("expected two assignments, got %d", len(env.backend.setCalls))
	}
}

func TestGlobalRequestsInternationalFeed(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "--global", "--index", "3"); err != nil {
		t.Fatalf("--global: %v", err)
	}
	query := env.query()
	requireContains(t, query, "ensearch=1")
	requireContains(t, query, "idx=3")
}

func TestNewTakesPrecedenceOverList(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "-l", "-n")
	if err != nil {
		t.Fatalf("-l -n: %v", err)
	}
	requireContains(t, out, "screen0: ")
}

func TestListPlain(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPictures("A.jpg", "B.jpg"))
	dir := env.cfg.Paths.PictureDir

	out, _, err := runCLI(t, env, "--list")
	if err != nil {
		t.Fatalf("--list: %v", err)
	}
	want := "1: " + filepath.Join(dir, "A.jpg") + "\n2: " + filepath.Join(dir, "B.jpg") + "\n"
	if out != want {
		t.Fatalf("list output = %q, want %q", out, want)
	}
	if len(env.backend.setCalls) != 0 {
		t.Fatal("list must not assign wallpapers")
	}
}

func TestIndexSelectsCachedPicture(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPictures("A.jpg", "B.jpg"))

	out, _, err := runCLI(t, env, "-i", "2", "-s", "1")
	if err != nil {
		t.Fatalf("-i 2: %v", err)
	}
	want := "screen1: " + filepath.Join(env.cfg.Paths.PictureDir, "B.jpg") + "\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPictures("A.jpg"))

	_, _, err := runCLI(t, env, "-i", "5")
	if !errors.Is(err, faults.ErrSelectionOutOfRange) {
		t.Fatalf("err = %v, want ErrSelectionOutOfRange", err)
	}
	if faults.ExitCode(err) != faults.ExitSelection {
		t.Fatalf("exit code = %d", faults.ExitCode(err))
	}
	if len(env.backend.setCalls) != 0 {
		t.Fatal("backend should not be touched")
	}
}

func TestRandomPicksCachedPicture(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPictures("Only.jpg"))

	out, _, err := runCLI(t, env)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	requireContains(t, out, "screen0: "+filepath.Join(env.cfg.Paths.PictureDir, "Only.jpg"))
}

func TestRandomOnEmptyDirectory(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPictures())

	_, _, err := runCLI(t, env)
	if !errors.Is(err, faults.ErrNoPicturesAvailable) {
		t.Fatalf("err = %v, want ErrNoPicturesAvailable", err)
	}
}

func TestScreenOutOfRange(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPictures("A.jpg"))

	_, _, err := runCLI(t, env, "-s", "2")
	if !errors.Is(err, faults.ErrSelectionOutOfRange) {
		t.Fatalf("err = %v, want ErrSelectionOutOfRange", err)
	}
	if len(env.backend.setCalls) != 0 {
		t.Fatal("backend should not be touched")
	}
}

func TestBackendRejectionIsReported(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPictures("A.jpg"))
	env.backend.setOK = false

	out, _, err := runCLI(t, env)
	if !errors.Is(err, faults.ErrAssignFailed) {
		t.Fatalf("err = %v, want ErrAssignFailed", err)
	}
	if out != "" {
		t.Fatalf("expected no status line, got %q", out)
	}
}

func TestMissingPictureDirectory(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Paths.PictureDir = ""
	writeTestConfig(t, env.configPath, env.cfg)

	_, _, err := runCLI(t, env, "--list")
	if !errors.Is(err, faults.ErrConfigMissing) {
		t.Fatalf("err = %v, want ErrConfigMissing", err)
	}
	if faults.ExitCode(err) != faults.ExitConfig {
		t.Fatalf("exit code = %d", faults.ExitCode(err))
	}
	requireContains(t, err.Error(), config.PictureDirEnv)
}

func TestInvalidBackendIsConfigError(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithBackend("gnome"))

	_, _, err := runCLI(t, env, "--list")
	if !errors.Is(err, faults.ErrConfigInvalid) {
		t.Fatalf("err = %v, want ErrConfigInvalid", err)
	}
	if faults.ExitCode(err) != faults.ExitConfig {
		t.Fatalf("exit code = %d", faults.ExitCode(err))
	}
	requireContains(t, err.Error(), "display.backend")
}

func TestEnvironmentOverridesPictureDirectory(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPictures("FromConfig.jpg"))
	other := t.TempDir()
	testsupport.WritePicture(t, filepath.Join(other, "FromEnv.jpg"))
	t.Setenv(config.PictureDirEnv, other)

	out, _, err := runCLI(t, env, "-l")
	if err != nil {
		t.Fatalf("-l: %v", err)
	}
	if !strings.Contains(out, "FromEnv.jpg") || strings.Contains(out, "FromConfig.jpg") {
		t.Fatalf("unexpected listing %q", out)
	}
}

func TestConcurrentRunIsRejected(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPictures("A.jpg"))

	held, err := runlock.Acquire(env.cfg.LockPath())
	if err != nil {
		t.Fatalf("acquire lock: %v", err)
	}
	defer held.Release()

	_, _, err = runCLI(t, env)
	if !errors.Is(err, faults.ErrLocked) {
		t.Fatalf("err = %v, want ErrLocked", err)
	}
}
