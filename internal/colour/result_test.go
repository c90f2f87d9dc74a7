package colour

import (
	"math"
	"testing"
)

func TestPairsCount(t *testing.T) {
	palettes := [][]Colour{
		{"#000000", "#ffffff"},
		{"#000000", "#ffffff", "#3b82f6"},
		{"#000000", "#ffffff", "#3b82f6", "#ff0000", "#00ff00"},
		{
			"#000000", "#111111", "#222222", "#333333", "#444444",
			"#555555", "#666666", "#777777", "#888888",
		},
	}

	for _, palette := range palettes {
		n := len(palette)
		count := 0
		for text, background := range Pairs(palette) {
			if text == background {
				t.Errorf("Pairs yielded self-pair %s", text)
			}
			count++
		}
		if want := n * (n - 1); count != want {
			t.Errorf("Pairs over %d colours yielded %d pairs, want %d", n, count, want)
		}
	}
}

func TestPairsOrder(t *testing.T) {
	palette := []Colour{"#aa0000", "#00bb00", "#0000cc"}

	type pair struct{ text, background Colour }
	want := []pair{
		{"#aa0000", "#00bb00"},
		{"#aa0000", "#0000cc"},
		{"#00bb00", "#aa0000"},
		{"#00bb00", "#0000cc"},
		{"#0000cc", "#aa0000"},
		{"#0000cc", "#00bb00"},
	}

	var got []pair
	for text, background := range Pairs(palette) {
		got = append(got, pair{text, background})
	}

	if len(got) != len(want) {
		t.Fatalf("Pairs yielded %d pairs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPairsEarlyStop(t *testing.T) {
	palette := []Colour{"#aa0000", "#00bb00", "#0000cc"}

	count := 0
	for range Pairs(palette) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iterator yielded %d pairs after break, want 2", count)
	}
}

func TestEvaluatePair(t *testing.T) {
	r := EvaluatePair("#f8fafc", "#0f172a")

	if r.Text != "#f8fafc" || r.Background != "#0f172a" {
		t.Errorf("result pair = (%s, %s), want (#f8fafc, #0f172a)", r.Text, r.Background)
	}
	if r.WCAGRatio < 16.5 || r.WCAGRatio > 17.3 {
		t.Errorf("WCAGRatio = %v, want ~16.9", r.WCAGRatio)
	}
	if r.WCAGTier != TierAAA {
		t.Errorf("WCAGTier = %s, want AAA", r.WCAGTier)
	}
	if r.APCALc >= 0 {
		t.Errorf("APCALc = %v, want negative (light text on dark background)", r.APCALc)
	}
	if r.APCATier != TierAAA {
		t.Errorf("APCATier = %s, want AAA", r.APCATier)
	}
}

func TestEvaluatePairDegenerate(t *testing.T) {
	// Identical colours are not an error: minimum contrast, Fail tier.
	r := EvaluatePair("#3b82f6", "#3b82f6")
	if r.WCAGRatio != 1.0 {
		t.Errorf("WCAGRatio = %v, want 1.0", r.WCAGRatio)
	}
	if r.APCALc != 0 {
		t.Errorf("APCALc = %v, want 0", r.APCALc)
	}
	if r.WCAGTier != TierFail || r.APCATier != TierFail {
		t.Errorf("tiers = (%s, %s), want (Fail, Fail)", r.WCAGTier, r.APCATier)
	}
}

func TestEvaluateAll(t *testing.T) {
	palette := []Colour{"#0f172a", "#f8fafc", "#3b82f6"}

	results := EvaluateAll(palette)
	if len(results) != 6 {
		t.Fatalf("EvaluateAll returned %d results, want 6", len(results))
	}
	for _, r := range results {
		if r.Text == r.Background {
			t.Errorf("self-pair in results: %s", r.Text)
		}
		if r.WCAGRatio < 1.0 {
			t.Errorf("ratio %v below 1.0 for (%s, %s)", r.WCAGRatio, r.Text, r.Background)
		}
	}
}

func TestEvaluateAllTooSmall(t *testing.T) {
	if got := EvaluateAll(nil); got != nil {
		t.Errorf("EvaluateAll(nil) = %v, want nil", got)
	}
	if got := EvaluateAll([]Colour{"#ffffff"}); got != nil {
		t.Errorf("EvaluateAll(single colour) = %v, want nil", got)
	}
}

func TestResultFormatting(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		wantWCAG string
		wantAPCA string
	}{
		{
			name:     "positive score gets explicit plus",
			result:   Result{WCAGRatio: 16.93855, APCALc: 104.372},
			wantWCAG: "16.94:1",
			wantAPCA: "+104.4",
		},
		{
			name:     "negative score keeps its sign",
			result:   Result{WCAGRatio: 21.0, APCALc: -110.58},
			wantWCAG: "21.00:1",
			wantAPCA: "-110.6",
		},
		{
			name:     "zero score has no sign",
			result:   Result{WCAGRatio: 1.0, APCALc: 0},
			wantWCAG: "1.00:1",
			wantAPCA: "0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.FormatWCAG(); got != tt.wantWCAG {
				t.Errorf("FormatWCAG() = %s, want %s", got, tt.wantWCAG)
			}
			if got := tt.result.FormatAPCA(); got != tt.wantAPCA {
				t.Errorf("FormatAPCA() = %s, want %s", got, tt.wantAPCA)
			}
		})
	}
}

func TestClassificationUsesUnroundedScores(t *testing.T) {
	// A ratio that displays as "4.50:1" but sits below the AA boundary
	// must classify from the unrounded value.
	ratio := 4.495
	if got := ClassifyWCAG(ratio); got != TierAALarge {
		t.Errorf("ClassifyWCAG(%v) = %s, want AA Large", ratio, got)
	}

	lc := 44.96
	if got := ClassifyAPCA(lc); got != TierFail {
		t.Errorf("ClassifyAPCA(%v) = %s, want Fail", lc, got)
	}
	if math.Round(lc*10)/10 < 45.0 {
		// Displayed value 45.0 would have misclassified as AA Large.
		t.Errorf("test value %v should round up to the boundary", lc)
	}
}
