//go:build !unix && !windows

package display

func platformDefault(Options) Backend {
	return Unsupported{}
}
