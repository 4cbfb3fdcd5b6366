// Package display renders planit's listings to the terminal: fixed-width
// columns, card-color-painted tags, and width-aware truncation so output
// degrades gracefully on a narrow terminal instead of wrapping badly.
package display

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/khalidh223/planit/internal/domain"
)

// TerminalWidth returns the current terminal's column count, falling back
// to 80 when stdout isn't a tty (piped output, CI, a log file).
func TerminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 80
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// Column is one field of a Table row, with a fixed display width.
type Column struct {
	Header string
	Width  int
}

// Table renders a simple fixed-width listing.
type Table struct {
	Columns []Column
	Rows    [][]string
}

func (t Table) String() string {
	var b strings.Builder
	for i, c := range t.Columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padTrunc(c.Header, c.Width))
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			width := 0
			if i < len(t.Columns) {
				width = t.Columns[i].Width
			}
			b.WriteString(padTrunc(cell, width))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func padTrunc(s string, width int) string {
	if width <= 0 {
		return s
	}
	if len(s) > width {
		if width <= 1 {
			return s[:width]
		}
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}

// CardTag renders a card's name painted in its color, for inline use in
// event and task listings.
func CardTag(name string, c domain.CardColor) string {
	paint := color.New()
	if fg, ok := ansiToColorAttr[c]; ok {
		paint = color.New(fg)
	}
	return paint.Sprint(name)
}

var ansiToColorAttr = map[domain.CardColor]color.Attribute{
	domain.Red:        color.FgRed,
	domain.LightCoral: color.FgRed,
	domain.Orange:     color.FgYellow,
	domain.Yellow:     color.FgYellow,
	domain.Green:      color.FgGreen,
	domain.LightGreen: color.FgGreen,
	domain.LightBlue:  color.FgCyan,
	domain.Blue:       color.FgBlue,
	domain.Indigo:     color.FgMagenta,
	domain.Violet:     color.FgMagenta,
	domain.Black:      color.FgWhite,
}
