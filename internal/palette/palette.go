// Package palette holds the ANSI colour palettes behind the built-in themes.
package palette

import "strconv"

// SGR attribute sequences.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Reverse       = "\x1b[7m"
	Strikethrough = "\x1b[9m"
)

// Palette is a set of foreground colour sequences, one per semantic role.
type Palette struct {
	Text     string
	H1       string
	H2       string
	H3       string
	H4       string
	H5       string
	H6       string
	Emphasis string
	Strong   string
	Strike   string
	Code     string
	Mark     string
}

// FG returns a 24-bit foreground colour sequence.
func FG(r, g, b uint8) string {
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

// BG returns a 24-bit background colour sequence.
func BG(r, g, b uint8) string {
	return "\x1b[48;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

var (
	PaletteDefault = Palette{
		H1:       FG(0x5f, 0xaf, 0xff),
		H2:       FG(0x5f, 0xd7, 0xaf),
		H3:       FG(0xaf, 0x87, 0xff),
		H4:       FG(0xd7, 0xaf, 0x5f),
		H5:       FG(0xd7, 0x87, 0x87),
		H6:       FG(0x87, 0x87, 0x87),
		Emphasis: FG(0xd7, 0xd7, 0x87),
		Strong:   FG(0xff, 0xd7, 0x5f),
		Strike:   FG(0x80, 0x80, 0x80),
		Code:     FG(0x87, 0xd7, 0x87),
		Mark:     BG(0x44, 0x44, 0x00),
	}
	PaletteGruvbox = Palette{
		Text:     FG(0xeb, 0xdb, 0xb2),
		H1:       FG(0xfb, 0x49, 0x34),
		H2:       FG(0xfa, 0xbd, 0x2f),
		H3:       FG(0xb8, 0xbb, 0x26),
		H4:       FG(0x83, 0xa5, 0x98),
		H5:       FG(0xd3, 0x86, 0x9b),
		H6:       FG(0x8e, 0xc0, 0x7c),
		Emphasis: FG(0x8e, 0xc0, 0x7c),
		Strong:   FG(0xfe, 0x80, 0x19),
		Strike:   FG(0x92, 0x83, 0x74),
		Code:     FG(0xb8, 0xbb, 0x26),
		Mark:     BG(0x50, 0x49, 0x45),
	}
	PaletteDracula = Palette{
		Text:     FG(0xf8, 0xf8, 0xf2),
		H1:       FG(0xff, 0x79, 0xc6),
		H2:       FG(0xbd, 0x93, 0xf9),
		H3:       FG(0x8b, 0xe9, 0xfd),
		H4:       FG(0x50, 0xfa, 0x7b),
		H5:       FG(0xff, 0xb8, 0x6c),
		H6:       FG(0x62, 0x72, 0xa4),
		Emphasis: FG(0xf1, 0xfa, 0x8c),
		Strong:   FG(0xff, 0xb8, 0x6c),
		Strike:   FG(0x62, 0x72, 0xa4),
		Code:     FG(0x50, 0xfa, 0x7b),
		Mark:     BG(0x44, 0x47, 0x5a),
	}
	PaletteNord = Palette{
		Text:     FG(0xd8, 0xde, 0xe9),
		H1:       FG(0x88, 0xc0, 0xd0),
		H2:       FG(0x81, 0xa1, 0xc1),
		H3:       FG(0x5e, 0x81, 0xac),
		H4:       FG(0x8f, 0xbc, 0xbb),
		H5:       FG(0xb4, 0x8e, 0xad),
		H6:       FG(0x4c, 0x56, 0x6a),
		Emphasis: FG(0xeb, 0xcb, 0x8b),
		Strong:   FG(0xd0, 0x87, 0x70),
		Strike:   FG(0x4c, 0x56, 0x6a),
		Code:     FG(0xa3, 0xbe, 0x8c),
		Mark:     BG(0x3b, 0x42, 0x52),
	}
	PaletteSolarizedDark = Palette{
		Text:     FG(0x83, 0x94, 0x96),
		H1:       FG(0xcb, 0x4b, 0x16),
		H2:       FG(0xb5, 0x89, 0x00),
		H3:       FG(0x26, 0x8b, 0xd2),
		H4:       FG(0x2a, 0xa1, 0x98),
		H5:       FG(0x6c, 0x71, 0xc4),
		H6:       FG(0x58, 0x6e, 0x75),
		Emphasis: FG(0x2a, 0xa1, 0x98),
		Strong:   FG(0xdc, 0x32, 0x2f),
		Strike:   FG(0x58, 0x6e, 0x75),
		Code:     FG(0x85, 0x99, 0x00),
		Mark:     BG(0x07, 0x36, 0x42),
	}
	PaletteSolarizedLight = Palette{
		Text:     FG(0x65, 0x7b, 0x83),
		H1:       FG(0xcb, 0x4b, 0x16),
		H2:       FG(0xb5, 0x89, 0x00),
		H3:       FG(0x26, 0x8b, 0xd2),
		H4:       FG(0x2a, 0xa1, 0x98),
		H5:       FG(0x6c, 0x71, 0xc4),
		H6:       FG(0x93, 0xa1, 0xa1),
		Emphasis: FG(0x2a, 0xa1, 0x98),
		Strong:   FG(0xdc, 0x32, 0x2f),
		Strike:   FG(0x93, 0xa1, 0xa1),
		Code:     FG(0x85, 0x99, 0x00),
		Mark:     BG(0xee, 0xe8, 0xd5),
	}
	PaletteGithubLight = Palette{
		Text:     FG(0x24, 0x29, 0x2f),
		H1:       FG(0x09, 0x69, 0xda),
		H2:       FG(0x09, 0x69, 0xda),
		H3:       FG(0x82, 0x50, 0xdf),
		H4:       FG(0x82, 0x50, 0xdf),
		H5:       FG(0x57, 0x60, 0x6a),
		H6:       FG(0x57, 0x60, 0x6a),
		Emphasis: FG(0x95, 0x38, 0x00),
		Strong:   FG(0xcf, 0x22, 0x2e),
		Strike:   FG(0x6e, 0x77, 0x81),
		Code:     FG(0x11, 0x63, 0x29),
		Mark:     BG(0xff, 0xf8, 0xc5),
	}
)
