package colour

import "fmt"

// Tier is a compliance classification bucket. Both the WCAG and APCA
// scales classify into the same four tiers; only the thresholds differ.
type Tier int

// Tiers in ascending order of compliance.
const (
	TierFail Tier = iota
	TierAALarge
	TierAA
	TierAAA
)

// String returns the display label for the tier.
func (t Tier) String() string {
	switch t {
	case TierAAA:
		return "AAA"
	case TierAA:
		return "AA"
	case TierAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}

// MarshalJSON encodes the tier as its display label.
func (t Tier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// MarshalYAML encodes the tier as its display label.
func (t Tier) MarshalYAML() (any, error) {
	return t.String(), nil
}

// ParseTier parses a tier label as used on the command line. Matching is
// case-insensitive and accepts "aa-large" and "large" for the AA Large
// tier.
func ParseTier(s string) (Tier, error) {
	switch normaliseLabel(s) {
	case "aaa":
		return TierAAA, nil
	case "aa":
		return TierAA, nil
	case "aa-large", "aalarge", "large":
		return TierAALarge, nil
	case "fail":
		return TierFail, nil
	default:
		return TierFail, fmt.Errorf("invalid tier: %s (valid: AAA, AA, AA-Large, Fail)", s)
	}
}

// normaliseLabel lowercases a label and folds spaces and underscores to
// hyphens.
func normaliseLabel(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c == ' ' || c == '_':
			out = append(out, '-')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
