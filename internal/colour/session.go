package colour

// Session bundles the palette with the display-only filter and mode
// flags into one explicit piece of application state. Contrast results
// are cached and recomputed only when the palette changes; filter and
// mode changes merely reapply visibility to the stored results.
type Session struct {
	palette *Palette
	filter  FilterState
	mode    Mode

	results []Result
	dirty   bool
}

// NewSession creates a session around the given palette with every tier
// shown and WCAG as the active scale.
func NewSession(p *Palette) *Session {
	return &Session{
		palette: p,
		filter:  NewFilterState(),
		dirty:   true,
	}
}

// Palette returns the session's palette. Mutating it directly bypasses
// cache invalidation; use the session's mutation methods instead.
func (s *Session) Palette() *Palette {
	return s.palette
}

// Filter returns the session's filter state.
func (s *Session) Filter() FilterState {
	return s.filter
}

// SetFilter replaces the filter state. Stored results are unaffected.
func (s *Session) SetFilter(f FilterState) {
	s.filter = f
}

// ToggleTier flips the shown flag for one tier. Stored results are
// unaffected.
func (s *Session) ToggleTier(t Tier) {
	s.filter.Toggle(t)
}

// Mode returns the active scale.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode switches the scale driving visibility. Stored results are
// unaffected.
func (s *Session) SetMode(m Mode) {
	s.mode = m
}

// AddColour appends a colour to the palette and invalidates the cached
// results.
func (s *Session) AddColour(raw string) (Entry, error) {
	entry, err := s.palette.Add(raw)
	if err == nil {
		s.dirty = true
	}
	return entry, err
}

// RemoveColour deletes a palette entry and invalidates the cached
// results.
func (s *Session) RemoveColour(id string) error {
	err := s.palette.Remove(id)
	if err == nil {
		s.dirty = true
	}
	return err
}

// UpdateColour changes a palette entry's colour and invalidates the
// cached results. On a malformed input the entry and the cached results
// are left untouched.
func (s *Session) UpdateColour(id, raw string) (Entry, error) {
	entry, err := s.palette.Update(id, raw)
	if err == nil {
		s.dirty = true
	}
	return entry, err
}

// Results returns the contrast results for every ordered pair,
// recomputing them only if the palette changed since the last call.
func (s *Session) Results() []Result {
	if s.dirty {
		s.results = s.palette.Evaluate()
		s.dirty = false
	}
	return s.results
}

// Visible returns the subset of Results shown under the current filter
// state and mode.
func (s *Session) Visible() []Result {
	return Filter(s.Results(), s.filter, s.mode)
}

// EmptyFiltered reports whether evaluation produced pairs but the
// current filter hides all of them. This is distinct from a palette too
// small to evaluate, which produces no results at all.
func (s *Session) EmptyFiltered() bool {
	results := s.Results()
	return len(results) > 0 && len(Filter(results, s.filter, s.mode)) == 0
}
