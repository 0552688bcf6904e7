package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"#", "Picture"}, [][]string{{"1", "A.jpg"}, {"2"}}, []columnAlignment{alignRight})
	// Rounded style upper-cases header text.
	for _, fragment := range []string{"PICTURE", "A.jpg", "╭"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in table:\n%s", fragment, out)
		}
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("Image feed", statusOK, "Reachable", false)
	if line != "  Image feed:        [OK] Reachable" {
		t.Fatalf("unexpected line %q", line)
	}
	colored := renderStatusLine("Image feed", statusError, "down", true)
	if !strings.HasPrefix(colored, ansiRed) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected red line, got %q", colored)
	}
}

func TestRenderStatusLineWarnWithoutMessage(t *testing.T) {
	line := renderStatusLine("xfconf-query", statusWarn, "", false)
	if line != "  xfconf-query:      [WARN]" {
		t.Fatalf("unexpected line %q", line)
	}
	colored := renderStatusLine("xfconf-query", statusWarn, "", true)
	if colored != ansiYellow+line+ansiReset {
		t.Fatalf("unexpected colored line %q", colored)
	}
}

func TestPrintSection(t *testing.T) {
	var buf bytes.Buffer
	printSection(&buf, "Dependencies")
	if buf.String() != "== Dependencies ==\n" {
		t.Fatalf("unexpected header %q", buf.String())
	}
}

func TestShouldColorizeBuffer(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}
