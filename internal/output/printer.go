package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer is the console output handler. Data output (tables, record
// counts requested by the user) always prints; commentary (file names,
// section banners) is suppressed in quiet mode so the data stays
// machine-consumable.
type Printer struct {
	writer io.Writer
	theme  *Theme
	quiet  bool
}

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithWriter configures the printer to write output to the specified
// writer. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithTheme configures the printer's styling theme.
func WithTheme(theme *Theme) Option {
	return func(p *Printer) {
		if theme != nil {
			p.theme = theme
		}
	}
}

// Quiet suppresses commentary output.
func Quiet() Option {
	return func(p *Printer) {
		p.quiet = true
	}
}

// NewPrinter creates a new Printer with the given options. By default
// it writes to os.Stdout with the plain theme.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		theme:  fallbackTheme("plain"),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Theme returns the printer's styling theme, for table rendering.
func (p *Printer) Theme() *Theme {
	return p.theme
}

// Println outputs one data line. Data is never suppressed.
func (p *Printer) Println(text string) {
	fmt.Fprintln(p.writer, text)
}

// Printf outputs formatted data. Data is never suppressed.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.writer, format, args...)
}

// Title outputs commentary naming a file being processed.
func (p *Printer) Title(text string) {
	p.commentary(p.theme.Title, text)
}

// Info outputs commentary such as section banners and record counts.
func (p *Printer) Info(text string) {
	p.commentary(p.theme.Info, text)
}

// Success outputs commentary confirming a completed operation.
func (p *Printer) Success(text string) {
	p.commentary(p.theme.Success, text)
}

// Warning outputs a warning line. Warnings print even in quiet mode:
// dropped records must stay observable.
func (p *Printer) Warning(text string) {
	fmt.Fprintln(p.writer, p.theme.Warning.Render(text))
}

// Error outputs an error line. Errors print even in quiet mode.
func (p *Printer) Error(text string) {
	fmt.Fprintln(p.writer, p.theme.Error.Render(text))
}

// commentary prints styled text unless quiet mode is on.
func (p *Printer) commentary(style lipgloss.Style, text string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.writer, style.Render(text))
}
