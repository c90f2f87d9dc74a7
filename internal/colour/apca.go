package colour

import "math"

// APCA (Advanced Perceptual Contrast Algorithm) constants. The exponent
// and coefficients differ deliberately from the WCAG relative-luminance
// model: APCA is a separate, polarity-aware perceptual model.
const (
	apcaExponent = 2.4

	apcaCoeffR = 0.2126729
	apcaCoeffG = 0.7151522
	apcaCoeffB = 0.072175

	// Soft black clamp, preventing numerical blow-up for near-black
	// luminance values.
	apcaBlackThreshold = 0.022
	apcaBlackExponent  = 1.414

	// Below this luminance delta the colours are perceptually
	// indistinguishable and the score is exactly zero.
	apcaDeltaYMin = 0.0005

	// Normal polarity: dark text on a lighter background.
	apcaNormalBG   = 0.56
	apcaNormalText = 0.57

	// Reverse polarity: light text on a darker background.
	apcaReverseBG   = 0.65
	apcaReverseText = 0.62

	apcaScale   = 1.14
	apcaLowClip = 0.1
)

// APCA Lc magnitude thresholds, inclusive on the lower bound.
const (
	apcaThresholdAAA     = 75.0
	apcaThresholdAA      = 60.0
	apcaThresholdAALarge = 45.0
)

// screenLuminance computes the APCA perceptual luminance estimate of a
// colour, including the soft black clamp.
func screenLuminance(c Colour) float64 {
	ch := c.Linear()
	y := apcaCoeffR*math.Pow(ch.R, apcaExponent) +
		apcaCoeffG*math.Pow(ch.G, apcaExponent) +
		apcaCoeffB*math.Pow(ch.B, apcaExponent)

	if y < apcaBlackThreshold {
		y += math.Pow(apcaBlackThreshold-y, apcaBlackExponent)
	}
	return y
}

// LightnessContrast calculates the signed APCA Lc score for text on
// background. Positive scores indicate dark text on a lighter background,
// negative scores the reverse; the sign is part of the result and must
// not be discarded. Scores of small magnitude clamp to exactly zero.
func LightnessContrast(text, background Colour) float64 {
	yText := screenLuminance(text)
	yBG := screenLuminance(background)

	if math.Abs(yBG-yText) < apcaDeltaYMin {
		return 0
	}

	if yBG > yText {
		// Normal polarity: background lighter than text.
		s := (math.Pow(yBG, apcaNormalBG) - math.Pow(yText, apcaNormalText)) * apcaScale
		if s < apcaLowClip {
			return 0
		}
		return s * 100
	}

	// Reverse polarity: text lighter than background.
	s := (math.Pow(yBG, apcaReverseBG) - math.Pow(yText, apcaReverseText)) * apcaScale
	if s > -apcaLowClip {
		return 0
	}
	return s * 100
}

// ClassifyAPCA maps an Lc score to its compliance tier using the score's
// magnitude. As with ClassifyWCAG the input must be unrounded.
func ClassifyAPCA(lc float64) Tier {
	abs := math.Abs(lc)
	switch {
	case abs >= apcaThresholdAAA:
		return TierAAA
	case abs >= apcaThresholdAA:
		return TierAA
	case abs >= apcaThresholdAALarge:
		return TierAALarge
	default:
		return TierFail
	}
}
