package core

// Color is the role of a screen cell. The terminal renderer decides how
// each role looks.
type Color uint8

// Cell roles.
const (
	ColorDefault Color = iota
	ColorPipe
	ColorPipeCap
	ColorBird
	ColorBeak
	ColorHUD
	ColorTitle
	ColorAlert
)
