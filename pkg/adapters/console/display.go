// Package console provides a Display that prints status messages to a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Display implements ports.Display on top of a termenv output.
// Messages are printed one per line; an optional foreground color is applied
// when the terminal supports it.
type Display struct {
	out   *termenv.Output
	color termenv.Color
}

// Option configures a console Display.
type Option func(*Display)

// WithColor prints messages in the given color (hex "#rrggbb" or ANSI index).
func WithColor(color string) Option {
	return func(d *Display) {
		if color != "" {
			d.color = d.out.Color(color)
		}
	}
}

// WithProfile forces a color profile, e.g. termenv.Ascii to disable styling.
func WithProfile(p termenv.Profile) Option {
	return func(d *Display) {
		d.out.Profile = p
	}
}

// New creates a console display writing to w (default: os.Stdout).
func New(w io.Writer, opts ...Option) *Display {
	if w == nil {
		w = os.Stdout
	}
	d := &Display{
		out: termenv.NewOutput(w),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Display prints the message followed by a newline.
func (d *Display) Display(message string) {
	styled := d.out.String(message)
	if d.color != nil {
		styled = styled.Foreground(d.color)
	}
	fmt.Fprintln(d.out, styled.String())
}
