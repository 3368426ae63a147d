package core

// Color is a foreground color for a screen cell.
// Frontends map it to whatever their output supports; plain text ignores it.
type Color uint8

// Palette used by the board and HUD.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorCyan
	ColorGreen
	ColorYellow
	ColorRed
	ColorMagenta
	ColorWhite
	ColorGray
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorMagenta:
		return "magenta"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
