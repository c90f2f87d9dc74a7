// Package colour implements the contrast scoring engine: hex colour
// decoding, the WCAG 2.1 contrast ratio, the APCA lightness contrast and
// the compliance tier classification shared by both scales.
package colour

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is reported when a colour string does not match the
// "#" + 3-or-6-hex-digit pattern after normalisation.
var ErrInvalidFormat = errors.New("invalid colour format")

// hexPattern matches a 3- or 6-digit hex colour once the "#" prefix has
// been ensured.
var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Colour is a colour in canonical 6-digit lowercase hex form, e.g.
// "#0f172a". Values produced by Normalize always satisfy this form;
// 3-digit shorthand is expanded on input.
type Colour string

// Validate reports whether raw can be normalised into a Colour.
// A missing "#" prefix and surrounding whitespace are tolerated.
func Validate(raw string) bool {
	return hexPattern.MatchString(ensurePrefix(raw))
}

// Normalize parses raw into a canonical Colour. It trims whitespace,
// prepends "#" when absent, expands 3-digit shorthand by duplicating each
// digit ("#abc" becomes "#aabbcc") and lowercases the result. Inputs that
// do not match the 3- or 6-digit hex pattern are rejected with
// ErrInvalidFormat.
func Normalize(raw string) (Colour, error) {
	s := ensurePrefix(raw)
	if !hexPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	if len(s) == 4 {
		// Expand "#abc" to "#aabbcc".
		s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}

	return Colour(strings.ToLower(s)), nil
}

// ensurePrefix trims whitespace and prepends "#" when missing.
func ensurePrefix(raw string) string {
	s := strings.TrimSpace(raw)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

// Channels holds the three decoded colour channels, each normalised to
// the [0,1] range.
type Channels struct {
	R float64
	G float64
	B float64
}

// Linear returns the channel triplet of c with each byte pair parsed as
// base-16 and divided by 255. A malformed Colour decodes to the zero
// triplet rather than an error: decoding only happens after validation,
// and black is a harmless fallback for anything that slips through.
func (c Colour) Linear() Channels {
	rgb, ok := c.bytes()
	if !ok {
		return Channels{}
	}
	return Channels{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// RGB holds the 8-bit channels of a colour, used for terminal previews.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a canonical hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGB returns the 8-bit channels of c, with the same zero fallback as
// Linear for malformed values.
func (c Colour) RGB() RGB {
	rgb, _ := c.bytes()
	return rgb
}

// bytes decodes the three byte pairs of a canonical Colour.
func (c Colour) bytes() (RGB, bool) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}
