package grid

import (
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Coord is a 0-based (row, col) position.
type Coord struct {
	Row, Col int
}

// Span is the extent of a merge anchor.
type Span struct {
	RowSpan, ColSpan int
}

// MergeIndex answers anchor and coverage queries for a set of merge regions.
// It is immutable; a changed merge list requires a new index.
type MergeIndex struct {
	anchors map[Coord]Span
	covered map[Coord]Coord // hidden cell -> anchor
	regions []models.MergeRegion
}

// BuildMergeIndex validates regions against a rows x cols grid and indexes
// them. Single-cell regions are validated but not recorded.
func BuildMergeIndex(rows, cols int, regions []models.MergeRegion) (*MergeIndex, error) {
	ix := &MergeIndex{
		anchors: make(map[Coord]Span),
		covered: make(map[Coord]Coord),
	}
	owner := make(map[Coord]int)

	for i, m := range regions {
		if m.StartRow < 0 || m.StartCol < 0 ||
			m.StartRow > m.EndRow || m.StartCol > m.EndCol ||
			m.EndRow >= rows || m.EndCol >= cols {
			return nil, NewMergeError(m, nil, ErrMergeOutOfBounds)
		}
		for r := m.StartRow; r <= m.EndRow; r++ {
			for c := m.StartCol; c <= m.EndCol; c++ {
				key := Coord{r, c}
				if j, ok := owner[key]; ok {
					other := regions[j]
					return nil, NewMergeError(m, &other, ErrOverlappingMerge)
				}
				owner[key] = i
			}
		}
		if m.IsSingleCell() {
			continue
		}

		anchor := Coord{m.StartRow, m.StartCol}
		ix.anchors[anchor] = Span{RowSpan: m.RowSpan(), ColSpan: m.ColSpan()}
		for r := m.StartRow; r <= m.EndRow; r++ {
			for c := m.StartCol; c <= m.EndCol; c++ {
				if r == m.StartRow && c == m.StartCol {
					continue
				}
				ix.covered[Coord{r, c}] = anchor
			}
		}
		ix.regions = append(ix.regions, m)
	}

	return ix, nil
}

// Anchor returns the span of the merge anchored at (row, col).
func (ix *MergeIndex) Anchor(row, col int) (Span, bool) {
	if ix == nil {
		return Span{}, false
	}
	s, ok := ix.anchors[Coord{row, col}]
	return s, ok
}

// IsHidden reports whether (row, col) is covered by a merge anchored elsewhere.
func (ix *MergeIndex) IsHidden(row, col int) bool {
	if ix == nil {
		return false
	}
	_, ok := ix.covered[Coord{row, col}]
	return ok
}

// AnchorOf returns the anchor covering a hidden cell.
func (ix *MergeIndex) AnchorOf(row, col int) (Coord, bool) {
	if ix == nil {
		return Coord{}, false
	}
	a, ok := ix.covered[Coord{row, col}]
	return a, ok
}

// Regions returns the indexed (multi-cell) regions in input order.
func (ix *MergeIndex) Regions() []models.MergeRegion {
	if ix == nil {
		return nil
	}
	return append([]models.MergeRegion(nil), ix.regions...)
}

// Len returns the number of indexed regions.
func (ix *MergeIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.regions)
}
