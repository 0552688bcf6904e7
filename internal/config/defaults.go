package config

const (
	defaultStateDir           = "~/.local/state/bingpaper"
	defaultFeedBaseURL        = "https://cn.bing.com"
	defaultFeedTimeoutSeconds = 30
	defaultFeedUserAgent      = "bingpaper/dev"
	defaultDisplayBackend     = "auto"
	defaultXfconfChannel      = "xfce4-desktop"
	defaultSlotSuffix         = "workspace0/last-image"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

func defaultConnectors() []string {
	return []string{"DisplayPort", "HDMI"}
}

// Default returns a Config populated with repository defaults. The picture
// directory has no default; it must come from BING_PAPER_HOME or the file.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Feed: Feed{
			BaseURL:        defaultFeedBaseURL,
			TimeoutSeconds: defaultFeedTimeoutSeconds,
			UserAgent:      defaultFeedUserAgent,
		},
		Display: Display{
			Backend:       defaultDisplayBackend,
			XfconfChannel: defaultXfconfChannel,
			Connectors:    defaultConnectors(),
			SlotSuffix:    defaultSlotSuffix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
