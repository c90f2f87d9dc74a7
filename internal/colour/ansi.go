package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns an ANSI-coloured preview block for a colour. Width
// specifies how many characters wide the block should be. Uses the
// background colour with spaces for a solid block.
func Swatch(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	rgb := c.RGB()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SampleText renders label in the text colour over the background
// colour, centred within width, so a pair can be previewed exactly as it
// would appear.
func SampleText(text, background Colour, label string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	tr := text.RGB()
	br := background.RGB()
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, tr.R, tr.G, tr.B, ansiSuffix)
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, br.R, br.G, br.B, ansiSuffix)

	display := label
	if len(label) > width {
		display = label[:width]
	} else if len(label) < width {
		pad := (width - len(label)) / 2
		display = strings.Repeat(" ", pad) + label + strings.Repeat(" ", width-len(label)-pad)
	}

	return bg + fg + display + ansiReset
}
