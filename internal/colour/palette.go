package colour

import (
	"fmt"

	"github.com/google/uuid"
)

// Bounds carries the configured palette size limits. They are consumed
// by the palette, never computed by it; the CLI reads them from the
// environment.
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds returns the standard 2..9 colour palette limits.
func DefaultBounds() Bounds {
	return Bounds{Min: 2, Max: 9}
}

// Entry is one palette member: a normalised colour plus a unique
// identifier. The identifier exists only so callers can track entries
// across updates; it never participates in the contrast maths.
type Entry struct {
	ID     string `json:"id" yaml:"id"`
	Colour Colour `json:"colour" yaml:"colour"`
}

// Palette is an ordered collection of colours with enforced size bounds.
// Order is insertion order and matters only for display, not for the
// maths.
type Palette struct {
	bounds  Bounds
	entries []Entry
}

// NewPalette creates an empty palette with the given bounds.
func NewPalette(bounds Bounds) *Palette {
	if bounds.Min < 2 {
		bounds.Min = 2
	}
	if bounds.Max < bounds.Min {
		bounds.Max = bounds.Min
	}
	return &Palette{bounds: bounds}
}

// DefaultPalette returns the fixed starter palette: a dark slate, a
// near-white and a mid blue.
func DefaultPalette(bounds Bounds) *Palette {
	p := NewPalette(bounds)
	for _, raw := range []string{"#0f172a", "#f8fafc", "#3b82f6"} {
		// The starter values are known-valid.
		_, _ = p.Add(raw)
	}
	return p
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Bounds returns the palette's size limits.
func (p *Palette) Bounds() Bounds {
	return p.bounds
}

// Entries returns a copy of the palette members in insertion order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Colours returns the palette's colours in insertion order.
func (p *Palette) Colours() []Colour {
	out := make([]Colour, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Colour
	}
	return out
}

// Add normalises raw and appends it to the palette. It fails when the
// colour is malformed or the palette is already at its maximum size.
func (p *Palette) Add(raw string) (Entry, error) {
	if len(p.entries) >= p.bounds.Max {
		return Entry{}, fmt.Errorf("palette is full (maximum %d colours)", p.bounds.Max)
	}

	c, err := Normalize(raw)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{ID: uuid.New().String(), Colour: c}
	p.entries = append(p.entries, entry)
	return entry, nil
}

// Remove deletes the entry with the given identifier. It fails when the
// identifier is unknown or the palette is already at its minimum size.
func (p *Palette) Remove(id string) error {
	if len(p.entries) <= p.bounds.Min {
		return fmt.Errorf("palette requires at least %d colours", p.bounds.Min)
	}

	for i, e := range p.entries {
		if e.ID == id {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no palette entry with id %s", id)
}

// Update replaces the colour of an existing entry in place. On a
// malformed input the entry keeps its prior colour and the error is
// returned for the caller to surface.
func (p *Palette) Update(id, raw string) (Entry, error) {
	for i, e := range p.entries {
		if e.ID != id {
			continue
		}
		c, err := Normalize(raw)
		if err != nil {
			return e, err
		}
		p.entries[i].Colour = c
		return p.entries[i], nil
	}
	return Entry{}, fmt.Errorf("no palette entry with id %s", id)
}

// Evaluate computes a Result for every ordered pair in the palette.
// Palettes below the two-colour minimum yield no results.
func (p *Palette) Evaluate() []Result {
	return EvaluateAll(p.Colours())
}
