package colour

import "fmt"

// Mode selects which score's tier drives result visibility. Changing the
// mode never recomputes scores, it only changes which stored tier is
// consulted.
type Mode int

const (
	// ModeWCAG filters on the WCAG 2.1 contrast-ratio tier.
	ModeWCAG Mode = iota
	// ModeAPCA filters on the APCA lightness-contrast tier.
	ModeAPCA
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if m == ModeAPCA {
		return "apca"
	}
	return "wcag"
}

// ParseMode parses a mode name as used on the command line.
func ParseMode(s string) (Mode, error) {
	switch normaliseLabel(s) {
	case "wcag", "":
		return ModeWCAG, nil
	case "apca":
		return ModeAPCA, nil
	default:
		return ModeWCAG, fmt.Errorf("invalid mode: %s (valid: wcag, apca)", s)
	}
}

// FilterState records, per tier, whether results classified into that
// tier are currently shown. It is orthogonal to the mode: the same flags
// apply whichever scale is active.
type FilterState map[Tier]bool

// NewFilterState returns a filter state with every tier shown.
func NewFilterState() FilterState {
	return FilterState{
		TierAAA:     true,
		TierAA:      true,
		TierAALarge: true,
		TierFail:    true,
	}
}

// Showing reports whether t is currently shown. Tiers absent from the
// map are hidden.
func (f FilterState) Showing(t Tier) bool {
	return f[t]
}

// Toggle flips the shown flag for t.
func (f FilterState) Toggle(t Tier) {
	f[t] = !f[t]
}

// Visible reports whether the result's tier under the given mode is
// currently shown.
func Visible(r Result, filter FilterState, mode Mode) bool {
	return filter.Showing(r.Tier(mode))
}

// Filter returns the visible subset of results in their original order.
func Filter(results []Result, filter FilterState, mode Mode) []Result {
	visible := make([]Result, 0, len(results))
	for _, r := range results {
		if Visible(r, filter, mode) {
			visible = append(visible, r)
		}
	}
	return visible
}
