package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"info", func(p *Printer) { p.Infof("using %s", "pnpm") }, "! using pnpm\n"},
		{"success", func(p *Printer) { p.Successf("created %d files", 3) }, "✔ created 3 files\n"},
		{"warn", func(p *Printer) { p.Warnf("old version") }, "⚠ old version\n"},
		{"error", func(p *Printer) { p.Errorf("boom: %v", "disk full") }, "x boom: disk full\n"},
		{"item", func(p *Printer) { p.Item("npm 10.2.4") }, "  npm 10.2.4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(New(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlainOutputHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	p.Header("DocuBook Environment Check")
	p.Successf("Found %s", p.Command("npm"))
	p.Item(p.Link("https://nodejs.org/"))

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("non-terminal output contains ANSI escapes: %q", buf.String())
	}
}

func TestBox(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Box("Next steps", []string{"cd docs", "pnpm run dev"})

	out := buf.String()
	for _, want := range []string{"Next steps", "cd docs", "pnpm run dev", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("box output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, title, blank, two commands, bottom border
	if len(lines) != 6 {
		t.Errorf("box has %d lines, want 6:\n%s", len(lines), out)
	}
	if idx := strings.Index(out, "cd docs"); idx > strings.Index(out, "pnpm run dev") {
		t.Error("commands should keep their order")
	}
}
