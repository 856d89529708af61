package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrinterOption is a functional option for Printer
type PrinterOption func(*Printer)

// WithColor enables or disables color output
func WithColor(enabled bool) PrinterOption {
	return func(p *Printer) {
		p.colorEnabled = enabled
	}
}

// WithVerbose enables or disables verbose mode
func WithVerbose(verbose bool) PrinterOption {
	return func(p *Printer) {
		p.verbose = verbose
	}
}

// Printer writes status lines to the terminal
type Printer struct {
	writer       io.Writer
	colorEnabled bool
	verbose      bool
}

// NewPrinter creates a new Printer
func NewPrinter(writer io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		writer:       writer,
		colorEnabled: true,
		verbose:      false,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Printer) print(attr color.Attribute, format string, args ...any) error {
	if p.colorEnabled {
		_, err := color.New(attr).Fprintf(p.writer, format, args...)
		return err
	}
	_, err := fmt.Fprintf(p.writer, format, args...)
	return err
}

// PrintInfo prints an info message
func (p *Printer) PrintInfo(message string) error {
	return p.print(color.FgCyan, "ℹ️  %s\n", message)
}

// PrintSuccess prints a success message
func (p *Printer) PrintSuccess(message string) error {
	return p.print(color.FgGreen, "✅ %s\n", message)
}

// PrintWarning prints a warning message
func (p *Printer) PrintWarning(message string) error {
	return p.print(color.FgYellow, "⚠️  %s\n", message)
}

// PrintError prints an error message
func (p *Printer) PrintError(message string) error {
	return p.print(color.FgRed, "❌ Error: %s\n", message)
}

// PrintValidation prints why an answer was rejected
func (p *Printer) PrintValidation(err error) error {
	return p.print(color.FgRed, "  >> %v\n", err)
}

// PrintPreview prints how an answer will appear, with its length against limit
// when limit is positive
func (p *Printer) PrintPreview(preview string, length, limit int) error {
	if limit <= 0 {
		return p.print(color.FgHiBlack, "  %s\n", preview)
	}
	attr := color.FgHiBlack
	if length > limit {
		attr = color.FgRed
	}
	return p.print(attr, "  %s (%d/%d)\n", preview, length, limit)
}

// PrintDetail prints a message only in verbose mode
func (p *Printer) PrintDetail(message string) error {
	if !p.verbose {
		return nil
	}
	return p.print(color.FgHiBlack, "   %s\n", message)
}

// Newline prints a newline
func (p *Printer) Newline() error {
	_, err := fmt.Fprintln(p.writer)
	return err
}
