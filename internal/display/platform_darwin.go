//go:build darwin

package display

func platformDefault(opts Options) Backend {
	return NewOsascript(opts)
}
