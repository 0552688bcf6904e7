package display

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"bingpaper/internal/deps"
	"bingpaper/internal/faults"
	"bingpaper/internal/logging"
)

const (
	xfconfBinary         = "xfconf-query"
	defaultXfconfChannel = "xfce4-desktop"
	defaultSlotSuffix    = "workspace0/last-image"
)

func defaultConnectors() []string {
	return []string{"DisplayPort", "HDMI"}
}

// Xfconf assigns wallpapers through the XFCE desktop configuration store.
// Each monitor has its own property key such as
// /backdrop/screen0/monitorHDMI-A-0/workspace0/last-image.
type Xfconf struct {
	channel    string
	connectors []string
	slotSuffix string
	runner     Runner
	logger     *slog.Logger
}

var _ Backend = (*Xfconf)(nil)

// NewXfconf builds the multi-output backend.
func NewXfconf(opts Options) *Xfconf {
	x := &Xfconf{
		channel:    strings.TrimSpace(opts.Channel),
		slotSuffix: strings.TrimSpace(opts.SlotSuffix),
		runner:     opts.Runner,
		logger:     logging.NewComponentLogger(opts.Logger, "display"),
	}
	for _, connector := range opts.Connectors {
		if trimmed := strings.TrimSpace(connector); trimmed != "" {
			x.connectors = append(x.connectors, trimmed)
		}
	}
	if x.channel == "" {
		x.channel = defaultXfconfChannel
	}
	if x.slotSuffix == "" {
		x.slotSuffix = defaultSlotSuffix
	}
	if len(x.connectors) == 0 {
		x.connectors = defaultConnectors()
	}
	if x.runner == nil {
		x.runner = ExecRunner{}
	}
	return x
}

func (x *Xfconf) Name() string { return KindXfconf }

func (x *Xfconf) Requirements() []deps.Requirement {
	return []deps.Requirement{{
		Name:        "xfconf-query",
		Command:     xfconfBinary,
		Description: "Required to read and write XFCE desktop wallpapers",
	}}
}

// Outputs lists the wallpaper properties of connected monitors, sorted so the
// index of a monitor does not depend on the store's listing order.
func (x *Xfconf) Outputs(ctx context.Context) ([]Output, error) {
	if err := x.ensureTool(); err != nil {
		return nil, err
	}
	out, err := x.runner.Output(ctx, xfconfBinary, "-c", x.channel, "-l")
	if err != nil {
		return nil, faults.Wrap(faults.ErrBackendUnavailable, "display", "list outputs", x.channel, err)
	}

	var outputs []Output
	for _, line := range strings.Split(string(out), "\n") {
		key := strings.TrimSpace(line)
		if key == "" || !strings.HasSuffix(key, x.slotSuffix) || !x.matchesConnector(key) {
			continue
		}
		outputs = append(outputs, Output(key))
	}
	sort.Slice(outputs, func(i, j int) bool { return outputs[i] < outputs[j] })

	x.logger.Debug("enumerated outputs",
		logging.String("channel", x.channel),
		logging.Int("output_count", len(outputs)))
	return outputs, nil
}

// Current returns the picture path stored for output.
func (x *Xfconf) Current(ctx context.Context, output Output) (string, error) {
	if err := x.ensureTool(); err != nil {
		return "", err
	}
	out, err := x.runner.Output(ctx, xfconfBinary, "-c", x.channel, "-p", string(output))
	if err != nil {
		return "", faults.Wrap(faults.ErrBackendUnavailable, "display", "read output", string(output), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Set writes path to the output's property. A non-zero exit from the tool is
// reported as false rather than an error.
func (x *Xfconf) Set(ctx context.Context, output Output, path string) (bool, error) {
	if err := x.ensureTool(); err != nil {
		return false, err
	}
	err := x.runner.Run(ctx, xfconfBinary, "-c", x.channel, "-p", string(output), "-s", path)
	switch {
	case err == nil:
		return true, nil
	case isExitError(err):
		logging.WarnWithContext(x.logger, "xfconf-query rejected wallpaper", "xfconf_set_failed",
			logging.String("output", string(output)),
			logging.String("path", path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that the property exists with xfconf-query -c "+x.channel+" -l"),
			logging.String(logging.FieldImpact, "wallpaper unchanged"))
		return false, nil
	default:
		return false, faults.Wrap(faults.ErrBackendUnavailable, "display", "set output", string(output), err)
	}
}

func (x *Xfconf) matchesConnector(key string) bool {
	for _, connector := range x.connectors {
		if strings.Contains(key, connector) {
			return true
		}
	}
	return false
}

func (x *Xfconf) ensureTool() error {
	if _, err := x.runner.LookPath(xfconfBinary); err != nil {
		return faults.Wrap(faults.ErrBackendUnavailable, "display", "xfconf", "xfconf-query is not installed", err)
	}
	return nil
}
