package colour

import "fmt"

// Result is the immutable contrast record for one ordered (text,
// background) pair. Both the WCAG and APCA scores are always computed;
// the display mode only decides which tier drives visibility.
type Result struct {
	Text       Colour  `json:"text" yaml:"text"`
	Background Colour  `json:"background" yaml:"background"`
	WCAGRatio  float64 `json:"wcag_ratio" yaml:"wcag_ratio"`
	WCAGTier   Tier    `json:"wcag_tier" yaml:"wcag_tier"`
	APCALc     float64 `json:"apca_lc" yaml:"apca_lc"`
	APCATier   Tier    `json:"apca_tier" yaml:"apca_tier"`
}

// EvaluatePair computes the WCAG contrast ratio and APCA Lc score for
// text on background, along with their compliance tiers. Classification
// uses the full-precision scores; rounding happens only in the Format
// helpers.
func EvaluatePair(text, background Colour) Result {
	ratio := ContrastRatio(text, background)
	lc := LightnessContrast(text, background)

	return Result{
		Text:       text,
		Background: background,
		WCAGRatio:  ratio,
		WCAGTier:   ClassifyWCAG(ratio),
		APCALc:     lc,
		APCATier:   ClassifyAPCA(lc),
	}
}

// FormatWCAG returns the display form of the contrast ratio, rounded to
// two decimal places at this point only.
func (r Result) FormatWCAG() string {
	return fmt.Sprintf("%.2f:1", r.WCAGRatio)
}

// FormatAPCA returns the display form of the Lc score, one decimal place
// with an explicit "+" for positive scores.
func (r Result) FormatAPCA() string {
	if r.APCALc > 0 {
		return fmt.Sprintf("+%.1f", r.APCALc)
	}
	return fmt.Sprintf("%.1f", r.APCALc)
}

// Tier returns the compliance tier of r under the given mode.
func (r Result) Tier(mode Mode) Tier {
	if mode == ModeAPCA {
		return r.APCATier
	}
	return r.WCAGTier
}

// Pairs returns an iterator over every ordered (text, background)
// combination of the palette, excluding self-pairs. For N colours it
// yields exactly N*(N-1) pairs in deterministic order: text index
// ascending in the outer loop, background index ascending in the inner.
func Pairs(palette []Colour) func(func(Colour, Colour) bool) {
	return func(yield func(Colour, Colour) bool) {
		for i, text := range palette {
			for j, background := range palette {
				if i == j {
					continue
				}
				if !yield(text, background) {
					return
				}
			}
		}
	}
}

// EvaluateAll computes a Result for every ordered pair of the palette.
// Palettes with fewer than two colours produce no results at all.
func EvaluateAll(palette []Colour) []Result {
	if len(palette) < 2 {
		return nil
	}

	results := make([]Result, 0, len(palette)*(len(palette)-1))
	for text, background := range Pairs(palette) {
		results = append(results, EvaluatePair(text, background))
	}
	return results
}
