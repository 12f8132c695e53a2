package ansiterm

// Color identifies one entry of the fixed terminal palette.
// Frame buffers store Colors directly; the escape text comes from the
// terminal description and is looked up only when a cell is written out.
type Color uint8

const (
	ColorReset Color = iota // default attributes
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite

	numColors
)

// terminfo color numbers, indexed by Color. ColorReset has none.
var colorIndex = [numColors]int{
	ColorReset:    -1,
	Black:         0,
	Red:           1,
	Green:         2,
	Yellow:        3,
	Blue:          4,
	Magenta:       5,
	Cyan:          6,
	White:         7,
	BrightBlack:   8,
	BrightRed:     9,
	BrightGreen:   10,
	BrightYellow:  11,
	BrightBlue:    12,
	BrightMagenta: 13,
	BrightCyan:    14,
	BrightWhite:   15,
}

var colorNames = [numColors]string{
	"reset", "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// String returns the color name.
func (c Color) String() string {
	if c >= numColors {
		return "unknown"
	}
	return colorNames[c]
}

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	return c < numColors
}
