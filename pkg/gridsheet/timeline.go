package gridsheet

import (
	"regexp"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
)

var headerTimeRx = regexp.MustCompile(`\b([0-9]{1,2})[:hH]([0-9]{2})\b`)

// Clock is a time of day found in a header cell.
type Clock struct {
	Text   string // matched text, e.g. "7h30"
	Hour   string
	Minute string
}

// ParseHeaderTime finds the first H:MM or HhMM clock in s.
func ParseHeaderTime(s string) (Clock, bool) {
	m := headerTimeRx.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, false
	}
	return Clock{Text: m[0], Hour: m[1], Minute: m[2]}, true
}

// RulerLabel renders a timeline header: the hour for a clock on the hour,
// nothing for other clocks, and non-clock text unchanged.
func RulerLabel(s string) string {
	c, ok := ParseHeaderTime(s)
	if !ok {
		return s
	}
	if c.Minute == "00" {
		return c.Hour
	}
	return ""
}

// Shift is a non-empty cell of a planning row together with the clocks read
// from the header row at its first column and just past its last column.
type Shift struct {
	Row     int
	Col     int
	ColSpan int
	Label   string
	Start   string
	End     string
}

// ShiftWindow describes the cell at (row, col). It reports false for empty,
// hidden or out-of-range cells.
func ShiftWindow(g *grid.Grid, row, col int) (Shift, bool) {
	cell, err := g.CellAt(row, col)
	if err != nil || cell.Hidden || cell.Value == "" {
		return Shift{}, false
	}
	_, span := cell.Spans()
	s := Shift{Row: row, Col: col, ColSpan: span, Label: cell.Value}
	if h, err := g.CellAt(0, col); err == nil {
		if c, ok := ParseHeaderTime(h.Value); ok {
			s.Start = c.Text
		}
	}
	if h, err := g.CellAt(0, col+span); err == nil {
		if c, ok := ParseHeaderTime(h.Value); ok {
			s.End = c.Text
		}
	}
	return s, true
}

// Shifts lists the shifts of row from column fromCol onwards.
func Shifts(g *grid.Grid, row, fromCol int) []Shift {
	_, cols := g.Dimensions()
	var out []Shift
	for c := max(fromCol, 0); c < cols; {
		s, ok := ShiftWindow(g, row, c)
		if !ok {
			c++
			continue
		}
		out = append(out, s)
		c += s.ColSpan
	}
	return out
}
