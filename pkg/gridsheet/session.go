package gridsheet

import (
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
)

// Session tracks the grid a caller is working on and whether it changed
// since the last save. It is not safe for concurrent use.
type Session struct {
	Name    string
	current *grid.Grid
	saved   *grid.Grid
}

// NewSession starts a clean session on g.
func NewSession(name string, g *grid.Grid) *Session {
	return &Session{Name: name, current: g, saved: g}
}

// Current returns the adopted grid.
func (s *Session) Current() *grid.Grid {
	return s.current
}

// Adopt makes g the current grid.
func (s *Session) Adopt(g *grid.Grid) {
	s.current = g
}

// Apply runs an edit against the current grid and adopts its result.
// On error the current grid is kept.
func (s *Session) Apply(edit func(*grid.Grid) (*grid.Grid, error)) error {
	ng, err := edit(s.current)
	if err != nil {
		return err
	}
	s.current = ng
	return nil
}

// Dirty reports whether the current grid differs from the last saved one.
func (s *Session) Dirty() bool {
	return s.current != s.saved
}

// MarkSaved records the current grid as saved.
func (s *Session) MarkSaved() {
	s.saved = s.current
}

// Clear adopts blank as the current grid. A nil blank means an empty grid of
// the baseline dimensions.
func (s *Session) Clear(blank *grid.Grid) {
	if blank == nil {
		blank = grid.NewDefault()
	}
	s.current = blank
}
