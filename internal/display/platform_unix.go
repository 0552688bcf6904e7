//go:build unix && !darwin

package display

func platformDefault(opts Options) Backend {
	return NewXfconf(opts)
}
