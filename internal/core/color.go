package core

// Color represents a foreground color for a screen cell.
// Values map onto the ANSI 16-color palette plus a gray.
type Color uint8

// Palette used by the climber renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorGray

	colorCount
)

// ColorCount is the number of palette entries.
const ColorCount = int(colorCount)
