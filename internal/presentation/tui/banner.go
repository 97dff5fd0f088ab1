package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the machine banner followed by the version and serial id.
func PrintBanner(w io.Writer, version, serialID string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{" __   __            _ _           ", "#818cf8"},
		{" \\ \\ / /__ _ _  __| (_)_ _  __ _ ", "#a78bfa"},
		{"  \\ V / -_) ' \\/ _` | | ' \\/ _` |", "#c084fc"},
		{"   \\_/\\___|_||_\\__,_|_|_||_\\__, |", "#e879f9"},
		{"                           |___/ ", "#f472b6"},
	}

	fmt.Fprintln(out)
	for _, l := range lines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(out, out.String(fmt.Sprintf(" v%s  serial %s", version, serialID)).Faint())
	fmt.Fprintln(out)
}
