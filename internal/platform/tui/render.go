package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hypnos/internal/core"
)

// palette holds one lipgloss style per core.Color, indexed by the color value.
var palette = func() [core.ColorCount]lipgloss.Style {
	ansi := [core.ColorCount]string{
		core.ColorRed:           "1",
		core.ColorYellow:        "3",
		core.ColorCyan:          "6",
		core.ColorWhite:         "7",
		core.ColorBrightRed:     "9",
		core.ColorBrightGreen:   "10",
		core.ColorBrightYellow:  "11",
		core.ColorBrightBlue:    "12",
		core.ColorBrightMagenta: "13",
		core.ColorBrightCyan:    "14",
		core.ColorGray:          "245",
	}

	var styles [core.ColorCount]lipgloss.Style
	for c, code := range ansi {
		styles[c] = lipgloss.NewStyle()
		if code != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= core.ColorCount {
		c = core.ColorDefault
	}
	return palette[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a color are rendered as one styled span.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		span.Reset()
		spanColor := core.ColorDefault
		for x, w := 0, s.Width(); x < w; x++ {
			cell := s.GetCell(x, y)
			if cell.Color != spanColor && span.Len() > 0 {
				sb.WriteString(renderSpan(span.String(), spanColor))
				span.Reset()
			}
			spanColor = cell.Color
			span.WriteRune(cell.Rune)
		}
		if span.Len() > 0 {
			sb.WriteString(renderSpan(span.String(), spanColor))
		}
	}
	return sb.String()
}

func renderSpan(text string, c core.Color) string {
	if c == core.ColorDefault {
		return text
	}
	return styleFor(c).Render(text)
}
