package display_test

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"bingpaper/internal/display"
	"bingpaper/internal/faults"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	missing map[string]bool
	output  map[string]string
	runErr  error
	calls   []call
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", exec.ErrNotFound
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	out, ok := f.output[strings.Join(args, " ")]
	if !ok {
		return nil, &display.ExitError{Command: name, Code: 1}
	}
	return []byte(out), nil
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.runErr
}

const listing = `/backdrop/screen0/monitorHDMI-A-0/workspace0/last-image
/backdrop/screen0/monitorHDMI-A-0/workspace1/last-image
/backdrop/screen0/monitorDisplayPort-1/workspace0/last-image
/backdrop/screen0/monitorDisplayPort-1/workspace0/image-style
/backdrop/screen0/monitoreDP-1/workspace0/last-image
/backdrop/single-workspace-mode
`

func newXfconf(runner *fakeRunner) *display.Xfconf {
	return display.NewXfconf(display.Options{Runner: runner})
}

func TestXfconfOutputsFiltersAndSorts(t *testing.T) {
	runner := &fakeRunner{output: map[string]string{"-c xfce4-desktop -l": listing}}
	outputs, err := newXfconf(runner).Outputs(context.Background())
	if err != nil {
		t.Fatalf("Outputs: %v", err)
	}
	want := []display.Output{
		"/backdrop/screen0/monitorDisplayPort-1/workspace0/last-image",
		"/backdrop/screen0/monitorHDMI-A-0/workspace0/last-image",
	}
	if !reflect.DeepEqual(outputs, want) {
		t.Fatalf("outputs = %v, want %v", outputs, want)
	}
}

func TestXfconfOutputsCustomConnectors(t *testing.T) {
	runner := &fakeRunner{output: map[string]string{"-c desk -l": listing}}
	x := display.NewXfconf(display.Options{
		Channel:    "desk",
		Connectors: []string{"eDP", " "},
		Runner:     runner,
	})
	outputs, err := x.Outputs(context.Background())
	if err != nil {
		t.Fatalf("Outputs: %v", err)
	}
	if len(outputs) != 1 || outputs[0] != "/backdrop/screen0/monitoreDP-1/workspace0/last-image" {
		t.Fatalf("unexpected outputs %v", outputs)
	}
}

func TestXfconfOutputsEmptyListing(t *testing.T) {
	runner := &fakeRunner{output: map[string]string{"-c xfce4-desktop -l": "\n"}}
	outputs, err := newXfconf(runner).Outputs(context.Background())
	if err != nil {
		t.Fatalf("Outputs: %v", err)
	}
	if len(outputs) != 0 {
		t.Fatalf("expected no outputs, got %v", outputs)
	}
}

func TestXfconfMissingBinary(t *testing.T) {
	runner := &fakeRunner{missing: map[string]bool{"xfconf-query": true}}
	x := newXfconf(runner)

	if _, err := x.Outputs(context.Background()); !errors.Is(err, faults.ErrBackendUnavailable) {
		t.Fatalf("Outputs err = %v, want ErrBackendUnavailable", err)
	}
	if _, err := x.Set(context.Background(), "key", "/tmp/a.jpg"); !errors.Is(err, faults.ErrBackendUnavailable) {
		t.Fatalf("Set err = %v, want ErrBackendUnavailable", err)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no commands, got %v", runner.calls)
	}
}

func TestXfconfCurrent(t *testing.T) {
	key := "/backdrop/screen0/monitorHDMI-A-0/workspace0/last-image"
	runner := &fakeRunner{output: map[string]string{
		"-c xfce4-desktop -p " + key: "/pics/Sunset.jpg\n",
	}}
	got, err := newXfconf(runner).Current(context.Background(), display.Output(key))
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got != "/pics/Sunset.jpg" {
		t.Fatalf("Current = %q", got)
	}
}

func TestXfconfSet(t *testing.T) {
	key := display.Output("/backdrop/screen0/monitorHDMI-A-0/workspace0/last-image")

	t.Run("success", func(t *testing.T) {
		runner := &fakeRunner{}
		ok, err := newXfconf(runner).Set(context.Background(), key, "/pics/A.jpg")
		if err != nil || !ok {
			t.Fatalf("Set = %v, %v", ok, err)
		}
		want := []string{"-c", "xfce4-desktop", "-p", string(key), "-s", "/pics/A.jpg"}
		if len(runner.calls) != 1 || !reflect.DeepEqual(runner.calls[0].args, want) {
			t.Fatalf("calls = %v", runner.calls)
		}
		if runner.calls[0].name != "xfconf-query" {
			t.Fatalf("command = %q", runner.calls[0].name)
		}
	})

	t.Run("non-zero exit", func(t *testing.T) {
		runner := &fakeRunner{runErr: &display.ExitError{Command: "xfconf-query", Code: 1, Stderr: "no such property"}}
		ok, err := newXfconf(runner).Set(context.Background(), key, "/pics/A.jpg")
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if ok {
			t.Fatal("expected false on non-zero exit")
		}
	})

	t.Run("start failure", func(t *testing.T) {
		runner := &fakeRunner{runErr: errors.New("fork failed")}
		_, err := newXfconf(runner).Set(context.Background(), key, "/pics/A.jpg")
		if !errors.Is(err, faults.ErrBackendUnavailable) {
			t.Fatalf("err = %v, want ErrBackendUnavailable", err)
		}
	})
}

func TestXfconfRequirements(t *testing.T) {
	reqs := newXfconf(&fakeRunner{}).Requirements()
	if len(reqs) != 1 || reqs[0].Command != "xfconf-query" {
		t.Fatalf("unexpected requirements %+v", reqs)
	}
}
