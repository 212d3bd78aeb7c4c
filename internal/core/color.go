package core

// Color is a foreground color for a screen cell.
// The platform maps it to terminal colors; games never see terminal codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorCyan
	ColorGreen
	ColorBlue
)
