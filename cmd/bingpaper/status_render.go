package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusOK statusKind = iota
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// doctor labels are padded so the bracketed verdicts line up.
const statusLabelWidth = 18

var statusStyles = [...]struct {
	label string
	color string
}{
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	style := statusStyles[kind]
	verdict := "[" + style.label + "]"
	if message != "" {
		verdict += " " + message
	}
	line := fmt.Sprintf("  %-*s %s", statusLabelWidth, label+":", verdict)
	if !colorize {
		return line
	}
	return style.color + line + ansiReset
}

func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "== %s ==\n", title)
}

// shouldColorize reports whether w is an interactive terminal. It also gates
// table output so piped listings stay line-oriented.
func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
