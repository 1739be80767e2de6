// Package ui writes the CLI's human-readable output: status lines with a
// leading symbol and bordered boxes for follow-up instructions. Styling is
// done with lipgloss and degrades to plain text when the writer is not a
// terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	symbolInfo    = "!"
	symbolSuccess = "✔"
	symbolWarn    = "⚠"
	symbolError   = "x"
)

// Printer writes styled lines to a single writer.
type Printer struct {
	w io.Writer

	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	failure lipgloss.Style
	header  lipgloss.Style
	command lipgloss.Style
	link    lipgloss.Style
	box     lipgloss.Style
}

// New returns a Printer writing to w. Colors are only emitted when w is a
// terminal.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		info:    r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("197")).Bold(true),
		header:  r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		command: r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		link:    r.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 1),
	}
}

func (p *Printer) line(style lipgloss.Style, symbol, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", style.Render(symbol), fmt.Sprintf(format, args...))
}

// Infof prints an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.info, symbolInfo, format, args...)
}

// Successf prints a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.success, symbolSuccess, format, args...)
}

// Warnf prints a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.warn, symbolWarn, format, args...)
}

// Errorf prints an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.failure, symbolError, format, args...)
}

// Header prints a bold title followed by a blank line.
func (p *Printer) Header(title string) {
	fmt.Fprintf(p.w, "%s\n\n", p.header.Render(title))
}

// Item prints an indented list entry.
func (p *Printer) Item(text string) {
	fmt.Fprintf(p.w, "  %s\n", text)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Command styles a shell command for inline use.
func (p *Printer) Command(s string) string { return p.command.Render(s) }

// Link styles a URL for inline use.
func (p *Printer) Link(s string) string { return p.link.Render(s) }

// Box prints title and one command per line inside a rounded border.
func (p *Printer) Box(title string, commands []string) {
	var b strings.Builder
	b.WriteString(p.header.Render(title))
	b.WriteString("\n")
	for _, c := range commands {
		b.WriteString("\n")
		b.WriteString(p.command.Render(c))
	}
	fmt.Fprintln(p.w, p.box.Render(b.String()))
}
