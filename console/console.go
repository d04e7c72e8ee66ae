// Package console renders Neural Black themed lines to a terminal. It
// is the output collaborator for the toolkit CLI: callers hand it text
// plus a semantic style name and it writes one styled line. Styling is
// always explicit - the console applies exactly the style the caller
// names and never restyles based on content.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/toolkit-cli/neuralblack/theme"
)

// Console writes themed lines to a single output stream.
type Console struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// Option configures a Console.
type Option func(*options)

type options struct {
	out   io.Writer
	color *bool
}

// WithOutput directs the console at w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithColor overrides automatic colour detection.
func WithColor(enabled bool) Option {
	return func(o *options) { o.color = &enabled }
}

// New constructs a console. Each call builds a fresh renderer, so
// consoles are independent and share no mutable state.
func New(opts ...Option) *Console {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	enabled := Enabled(o.out)
	forced := o.color != nil
	if forced {
		enabled = *o.color
	}

	renderer := lipgloss.NewRenderer(o.out)
	switch {
	case !enabled:
		renderer.SetColorProfile(termenv.Ascii)
	case forced:
		// Colour requested explicitly, skip terminal detection.
		renderer.SetColorProfile(termenv.TrueColor)
	}
	return &Console{out: o.out, renderer: renderer}
}

// Enabled reports whether styled output should be produced for w.
// NO_COLOR and empty or dumb TERM disable colour, as does any output
// that is not a terminal.
func Enabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Print writes text as one line, styled by the named theme style.
// Unknown style names render unstyled. Write errors are returned to
// the caller unmodified.
func (c *Console) Print(text, styleName string) error {
	styled := theme.Style(styleName).Renderer(c.renderer).Render(text)
	_, err := fmt.Fprintln(c.out, styled)
	return err
}
