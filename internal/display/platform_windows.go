//go:build windows

package display

func platformDefault(opts Options) Backend {
	return NewWindows(opts)
}
