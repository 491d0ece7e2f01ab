package gridsheet

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
)

// FindRow returns the first row after the header rows whose keyCol cell
// equals key, ignoring surrounding whitespace.
func FindRow(g *grid.Grid, keyCol int, key string, headerRows int) (int, error) {
	rows, cols := g.Dimensions()
	if keyCol < 0 || keyCol >= cols {
		return -1, fmt.Errorf("key column %d: %w", keyCol, grid.ErrIndexOutOfRange)
	}
	key = strings.TrimSpace(key)
	for r := max(headerRows, 0); r < rows; r++ {
		cell, _ := g.CellAt(r, keyCol)
		if strings.TrimSpace(cell.Value) == key {
			return r, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrRowNotFound, key)
}

// FilterRows returns the header rows followed by every row with a cell
// containing term, compared with Unicode case folding. An empty term keeps
// all rows.
func FilterRows(g *grid.Grid, term string, headerRows int) []int {
	rows, _ := g.Dimensions()
	fold := cases.Fold()
	term = fold.String(term)
	values := g.Values()

	out := []int{}
	for r := 0; r < rows; r++ {
		if r < headerRows || term == "" || rowContains(fold, values[r], term) {
			out = append(out, r)
		}
	}
	return out
}

func rowContains(fold cases.Caser, row []string, folded string) bool {
	for _, v := range row {
		if strings.Contains(fold.String(v), folded) {
			return true
		}
	}
	return false
}
