package colour

import "math"

// WCAG 2.1 contrast ratio thresholds, inclusive on the lower bound.
// https://www.w3.org/TR/WCAG21/#contrast-minimum.
const (
	wcagThresholdAAA     = 7.0
	wcagThresholdAA      = 4.5
	wcagThresholdAALarge = 3.0
)

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.1. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance.
func Luminance(c Colour) float64 {
	ch := c.Linear()
	return 0.2126*srgbToLinear(ch.R) + 0.7152*srgbToLinear(ch.G) + 0.0722*srgbToLinear(ch.B)
}

// srgbToLinear applies the sRGB transfer function to a colour component.
func srgbToLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG 2.1 contrast ratio between two
// colours. Returns a value between 1 and 21, where 21 is maximum
// contrast (black on white). The ratio is symmetric: which colour plays
// the text role does not matter.
func ContrastRatio(a, b Colour) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ClassifyWCAG maps a contrast ratio to its compliance tier. The ratio
// must be unrounded: rounding before comparison misclassifies values
// adjacent to the 3/4.5/7 boundaries.
func ClassifyWCAG(ratio float64) Tier {
	switch {
	case ratio >= wcagThresholdAAA:
		return TierAAA
	case ratio >= wcagThresholdAA:
		return TierAA
	case ratio >= wcagThresholdAALarge:
		return TierAALarge
	default:
		return TierFail
	}
}
