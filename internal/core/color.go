package core

// Color is an index into the 16-entry board palette.
// Index 0 is black, which the board treats as "no colour".
type Color uint8

// Palette indices.
const (
	ColorBlack Color = iota
	ColorDarkBlue
	ColorDarkPurple
	ColorDarkGreen
	ColorBrown
	ColorDarkGray
	ColorLightGray
	ColorWhite
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorIndigo
	ColorPink
	ColorPeach
)

// PaletteSize is the number of addressable colours (one nibble).
const PaletteSize = 16

var paletteHex = [PaletteSize]string{
	"#000000",
	"#1D2B53",
	"#7E2553",
	"#008751",
	"#AB5236",
	"#5F574F",
	"#C2C3C7",
	"#FFF1E8",
	"#FF004D",
	"#FFA300",
	"#FFEC27",
	"#00E436",
	"#29ADFF",
	"#83769C",
	"#FF77A8",
	"#FFCCAA",
}

// Hex returns the colour as a "#RRGGBB" string suitable for terminal styling.
func (c Color) Hex() string {
	return paletteHex[c&0x0F]
}

// IsBlack reports whether c is the black sentinel.
func (c Color) IsBlack() bool {
	return c&0x0F == ColorBlack
}
