package core

// Color is the foreground of a screen cell. The platform maps each value to
// an ANSI 256-color code.
type Color uint8

// Scene palette: tiles are bright blue, the wall orange, steps green, bombs
// red and hints gray. The remaining values are free for overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
)
