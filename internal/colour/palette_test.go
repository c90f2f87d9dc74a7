package colour

import (
	"errors"
	"testing"
)

func TestPaletteAdd(t *testing.T) {
	p := NewPalette(DefaultBounds())

	entry, err := p.Add("0F172A")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if entry.Colour != "#0f172a" {
		t.Errorf("Add() colour = %s, want #0f172a", entry.Colour)
	}
	if entry.ID == "" {
		t.Error("Add() returned entry without an ID")
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPaletteAddInvalid(t *testing.T) {
	p := NewPalette(DefaultBounds())

	_, err := p.Add("#12345")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Add(#12345) error = %v, want ErrInvalidFormat", err)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d after failed Add, want 0", p.Len())
	}
}

func TestPaletteMaxBound(t *testing.T) {
	p := NewPalette(Bounds{Min: 2, Max: 3})

	for _, raw := range []string{"#000000", "#ffffff", "#3b82f6"} {
		if _, err := p.Add(raw); err != nil {
			t.Fatalf("Add(%s) error = %v", raw, err)
		}
	}

	if _, err := p.Add("#ff0000"); err == nil {
		t.Error("Add() beyond maximum should fail")
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestPaletteRemove(t *testing.T) {
	p := NewPalette(DefaultBounds())

	var ids []string
	for _, raw := range []string{"#000000", "#ffffff", "#3b82f6"} {
		entry, err := p.Add(raw)
		if err != nil {
			t.Fatalf("Add(%s) error = %v", raw, err)
		}
		ids = append(ids, entry.ID)
	}

	if err := p.Remove(ids[1]); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}

	// At the minimum bound, removal is refused.
	if err := p.Remove(ids[0]); err == nil {
		t.Error("Remove() at minimum bound should fail")
	}

	if err := p.Remove("no-such-id"); err == nil {
		t.Error("Remove() with unknown id should fail")
	}
}

func TestPaletteRemovePreservesOrder(t *testing.T) {
	p := NewPalette(DefaultBounds())

	var ids []string
	for _, raw := range []string{"#111111", "#222222", "#333333", "#444444"} {
		entry, _ := p.Add(raw)
		ids = append(ids, entry.ID)
	}

	if err := p.Remove(ids[1]); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	want := []Colour{"#111111", "#333333", "#444444"}
	got := p.Colours()
	if len(got) != len(want) {
		t.Fatalf("Colours() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Colours()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPaletteUpdate(t *testing.T) {
	p := NewPalette(DefaultBounds())
	entry, _ := p.Add("#000000")
	_, _ = p.Add("#ffffff")

	updated, err := p.Update(entry.ID, "abc")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Colour != "#aabbcc" {
		t.Errorf("Update() colour = %s, want #aabbcc", updated.Colour)
	}
	if updated.ID != entry.ID {
		t.Errorf("Update() changed the entry ID")
	}
}

func TestPaletteUpdateInvalidKeepsPrior(t *testing.T) {
	p := NewPalette(DefaultBounds())
	entry, _ := p.Add("#3b82f6")
	_, _ = p.Add("#ffffff")

	prior, err := p.Update(entry.ID, "#gggggg")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Update() error = %v, want ErrInvalidFormat", err)
	}
	if prior.Colour != "#3b82f6" {
		t.Errorf("Update() returned %s, want the prior colour #3b82f6", prior.Colour)
	}
	if p.Colours()[0] != "#3b82f6" {
		t.Errorf("palette colour changed after failed update")
	}
}

func TestPaletteUniqueIDs(t *testing.T) {
	p := NewPalette(DefaultBounds())

	seen := make(map[string]bool)
	for _, raw := range []string{"#000000", "#111111", "#222222", "#333333"} {
		entry, err := p.Add(raw)
		if err != nil {
			t.Fatalf("Add(%s) error = %v", raw, err)
		}
		if seen[entry.ID] {
			t.Errorf("duplicate entry ID %s", entry.ID)
		}
		seen[entry.ID] = true
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette(DefaultBounds())

	want := []Colour{"#0f172a", "#f8fafc", "#3b82f6"}
	got := p.Colours()
	if len(got) != len(want) {
		t.Fatalf("DefaultPalette has %d colours, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DefaultPalette[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	results := p.Evaluate()
	if len(results) != 6 {
		t.Errorf("Evaluate() returned %d results, want 6", len(results))
	}
}

func TestPaletteEvaluateTooSmall(t *testing.T) {
	p := NewPalette(DefaultBounds())
	_, _ = p.Add("#ffffff")

	if results := p.Evaluate(); results != nil {
		t.Errorf("Evaluate() on single-colour palette = %v, want nil", results)
	}
}
