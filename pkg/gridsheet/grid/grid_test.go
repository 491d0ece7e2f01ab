package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

func region(r1, c1, r2, c2 int) models.MergeRegion {
	return models.MergeRegion{StartRow: r1, StartCol: c1, EndRow: r2, EndCol: c2}
}

func mustMerge(t *testing.T, g *Grid, regions ...models.MergeRegion) *Grid {
	t.Helper()
	ng, err := g.ApplyMergeRegions(regions)
	require.NoError(t, err)
	return ng
}

func TestNew(t *testing.T) {
	g := New(3, 4)
	rows, cols := g.Dimensions()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)

	cell, err := g.CellAt(2, 3)
	require.NoError(t, err)
	assert.Equal(t, models.Cell{}, cell)
	assert.Empty(t, g.Merges())

	rows, cols = New(0, 5).Dimensions()
	assert.Zero(t, rows)
	assert.Zero(t, cols)

	rows, cols = NewDefault().Dimensions()
	assert.Equal(t, DefaultRows, rows)
	assert.Equal(t, DefaultCols, cols)
}

func TestCellAtOutOfRange(t *testing.T) {
	g := New(2, 2)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := g.CellAt(rc[0], rc[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "CellAt(%d,%d)", rc[0], rc[1])
	}
}

func TestApplyMergeRegionsStampsCells(t *testing.T) {
	g := mustMerge(t, New(5, 5), region(0, 0, 1, 2), region(3, 3, 4, 4))

	for _, m := range g.Merges() {
		anchor, err := g.CellAt(m.StartRow, m.StartCol)
		require.NoError(t, err)
		assert.Equal(t, m.EndRow-m.StartRow+1, anchor.RowSpan)
		assert.Equal(t, m.EndCol-m.StartCol+1, anchor.ColSpan)
		assert.False(t, anchor.Hidden)

		for r := m.StartRow; r <= m.EndRow; r++ {
			for c := m.StartCol; c <= m.EndCol; c++ {
				if r == m.StartRow && c == m.StartCol {
					continue
				}
				cell, err := g.CellAt(r, c)
				require.NoError(t, err)
				assert.True(t, cell.Hidden, "cell (%d,%d) should be hidden", r, c)
				rs, cs := cell.Spans()
				assert.Equal(t, 1, rs)
				assert.Equal(t, 1, cs)
			}
		}
	}

	outside, err := g.CellAt(2, 2)
	require.NoError(t, err)
	assert.False(t, outside.Hidden)
	assert.False(t, outside.IsAnchor())
}

func TestApplyMergeRegionsClearsStaleFlags(t *testing.T) {
	g := mustMerge(t, New(4, 4), region(0, 0, 1, 1))
	g = mustMerge(t, g, region(2, 2, 3, 3))

	old, err := g.CellAt(0, 0)
	require.NoError(t, err)
	assert.False(t, old.IsAnchor())
	covered, err := g.CellAt(1, 1)
	require.NoError(t, err)
	assert.False(t, covered.Hidden)

	anchor, err := g.CellAt(2, 2)
	require.NoError(t, err)
	assert.True(t, anchor.IsAnchor())
}

func TestApplyMergeRegionsOverlap(t *testing.T) {
	base := New(4, 4)
	g, err := base.ApplyMergeRegions([]models.MergeRegion{region(0, 0, 1, 1), region(1, 1, 2, 2)})
	assert.Nil(t, g)
	require.ErrorIs(t, err, ErrOverlappingMerge)

	var me *MergeError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, region(1, 1, 2, 2), me.Region)
	require.NotNil(t, me.Other)
	assert.Equal(t, region(0, 0, 1, 1), *me.Other)

	// receiver untouched
	assert.Empty(t, base.Merges())
	cell, _ := base.CellAt(1, 1)
	assert.False(t, cell.Hidden)
}

func TestApplyMergeRegionsOverlapFailureKeepsPreviousMerges(t *testing.T) {
	g := mustMerge(t, New(4, 4), region(0, 0, 0, 1))
	_, err := g.ApplyMergeRegions([]models.MergeRegion{region(2, 0, 3, 0), region(3, 0, 3, 1)})
	require.ErrorIs(t, err, ErrOverlappingMerge)
	assert.Equal(t, []models.MergeRegion{region(0, 0, 0, 1)}, g.Merges())
}

func TestApplyMergeRegionsOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		region models.MergeRegion
	}{
		{"end row past grid", region(0, 0, 3, 0)},
		{"end col past grid", region(0, 0, 0, 3)},
		{"negative start", region(-1, 0, 1, 1)},
		{"inverted rows", region(2, 0, 1, 1)},
		{"inverted cols", region(0, 2, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(3, 3).ApplyMergeRegions([]models.MergeRegion{tt.region})
			assert.ErrorIs(t, err, ErrMergeOutOfBounds)
		})
	}
}

func TestSingleCellRegionIgnored(t *testing.T) {
	g := mustMerge(t, New(2, 2), region(1, 1, 1, 1))
	assert.Empty(t, g.Merges())

	_, err := New(3, 3).ApplyMergeRegions([]models.MergeRegion{region(0, 0, 1, 1), region(1, 1, 1, 1)})
	assert.ErrorIs(t, err, ErrOverlappingMerge)
}

func TestSetCellValue(t *testing.T) {
	g := mustMerge(t, New(3, 3), region(0, 0, 1, 1))

	_, err := g.SetCellValue(0, 1, "x")
	require.ErrorIs(t, err, ErrCellHidden)
	var hidden *HiddenCellError
	require.True(t, errors.As(err, &hidden))
	assert.Equal(t, 0, hidden.AnchorRow)
	assert.Equal(t, 0, hidden.AnchorCol)
	assert.Contains(t, err.Error(), "B1")

	ng, err := g.SetCellValue(0, 0, "x")
	require.NoError(t, err)
	cell, _ := ng.CellAt(0, 0)
	assert.Equal(t, "x", cell.Value)
	assert.Equal(t, 2, cell.RowSpan)

	// original grid unchanged
	cell, _ = g.CellAt(0, 0)
	assert.Equal(t, "", cell.Value)

	_, err = g.SetCellValue(3, 0, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSetCellValueSharesUntouchedRows(t *testing.T) {
	g := New(3, 3)
	ng, err := g.SetCellValue(1, 1, "v")
	require.NoError(t, err)
	assert.Same(t, &g.cells[0][0], &ng.cells[0][0])
	assert.NotSame(t, &g.cells[1][0], &ng.cells[1][0])
}

func TestSetCellStyle(t *testing.T) {
	g := New(2, 2)
	ng, err := g.SetCellStyle(1, 0, models.Style{Bold: true, BackgroundColor: "FF0000"})
	require.NoError(t, err)

	cell, _ := ng.CellAt(1, 0)
	require.NotNil(t, cell.Style)
	assert.True(t, cell.Style.Bold)

	// returned copies do not alias the grid
	cell.Style.Bold = false
	again, _ := ng.CellAt(1, 0)
	assert.True(t, again.Style.Bold)

	cleared, err := ng.SetCellStyle(1, 0, models.Style{})
	require.NoError(t, err)
	cell, _ = cleared.CellAt(1, 0)
	assert.Nil(t, cell.Style)
}

func TestInsertRow(t *testing.T) {
	g := mustMerge(t, New(6, 3),
		region(0, 0, 0, 1), // above
		region(1, 0, 3, 0), // straddles row 2
		region(4, 1, 5, 2), // below
	)
	g, _ = g.SetCellValue(4, 1, "below")
	g, _ = g.SetRowHeight(4, 30)

	ng, err := g.InsertRow(2)
	require.NoError(t, err)

	rows, cols := ng.Dimensions()
	assert.Equal(t, 7, rows)
	assert.Equal(t, 3, cols)
	assert.ElementsMatch(t, []models.MergeRegion{
		region(0, 0, 0, 1),
		region(1, 0, 3, 0),
		region(5, 1, 6, 2),
	}, ng.Merges())

	cell, _ := ng.CellAt(5, 1)
	assert.Equal(t, "below", cell.Value)
	assert.Equal(t, 2, cell.RowSpan)
	assert.Equal(t, 30.0, ng.RowHeight(5))
	assert.Zero(t, ng.RowHeight(2))

	inserted, _ := ng.CellAt(2, 1)
	assert.Equal(t, "", inserted.Value)
	// the straddling region now covers the inserted row
	straddled, _ := ng.CellAt(2, 0)
	assert.True(t, straddled.Hidden)

	_, err = g.InsertRow(7)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	appended, err := g.InsertRow(6)
	require.NoError(t, err)
	rows, _ = appended.Dimensions()
	assert.Equal(t, 7, rows)
}

func TestInsertColumn(t *testing.T) {
	g := mustMerge(t, New(3, 5),
		region(0, 0, 1, 0), // left
		region(0, 1, 0, 3), // straddles col 2
		region(1, 3, 2, 4), // right
	)
	g, _ = g.SetColumnWidth(4, 120)

	ng, err := g.InsertColumn(2)
	require.NoError(t, err)

	rows, cols := ng.Dimensions()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 6, cols)
	assert.ElementsMatch(t, []models.MergeRegion{
		region(0, 0, 1, 0),
		region(0, 1, 0, 3),
		region(1, 4, 2, 5),
	}, ng.Merges())
	assert.Equal(t, 120.0, ng.ColumnWidth(5))
	assert.Zero(t, ng.ColumnWidth(4))

	_, err = g.InsertColumn(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestInsertStrict(t *testing.T) {
	g := mustMerge(t, New(4, 4), region(1, 1, 2, 2))

	_, err := g.InsertRowStrict(2)
	assert.ErrorIs(t, err, ErrStraddlingMerge)
	_, err = g.InsertColumnStrict(2)
	assert.ErrorIs(t, err, ErrStraddlingMerge)

	ng, err := g.InsertRowStrict(1)
	require.NoError(t, err)
	assert.Equal(t, []models.MergeRegion{region(2, 1, 3, 2)}, ng.Merges())

	ng, err = g.InsertColumnStrict(3)
	require.NoError(t, err)
	assert.Equal(t, []models.MergeRegion{region(1, 1, 2, 2)}, ng.Merges())
}

func TestResize(t *testing.T) {
	g := mustMerge(t, New(3, 3), region(0, 0, 1, 1))
	g, _ = g.SetCellValue(0, 0, "keep")
	g, _ = g.SetCellValue(2, 2, "drop")

	grown, err := g.Resize(5, 6)
	require.NoError(t, err)
	rows, cols := grown.Dimensions()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 6, cols)
	cell, _ := grown.CellAt(0, 0)
	assert.Equal(t, "keep", cell.Value)
	assert.Equal(t, 2, cell.ColSpan)

	shrunk, err := g.Resize(2, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"keep", ""}, {"", ""}}, shrunk.Values())

	_, err = g.Resize(1, 3)
	assert.ErrorIs(t, err, ErrMergeOutOfBounds)
	_, err = g.Resize(-1, 3)
	assert.ErrorIs(t, err, ErrNegativeSize)
}

func TestSizes(t *testing.T) {
	g := New(2, 2)
	_, err := g.SetColumnWidth(2, 10)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = g.SetRowHeight(0, -1)
	assert.ErrorIs(t, err, ErrNegativeSize)

	ng, err := g.SetColumnWidth(1, 80)
	require.NoError(t, err)
	assert.Equal(t, 80.0, ng.ColumnWidth(1))
	assert.Zero(t, g.ColumnWidth(1))
	assert.Zero(t, ng.ColumnWidth(9))
}

func TestCleared(t *testing.T) {
	g := mustMerge(t, New(3, 4), region(0, 0, 1, 1))
	g, _ = g.SetCellValue(2, 3, "x")

	c := g.Cleared()
	rows, cols := c.Dimensions()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Empty(t, c.Merges())
	_, ok := c.UsedRange()
	assert.False(t, ok)
}

func TestUsedRange(t *testing.T) {
	g := New(6, 6)
	g, _ = g.SetCellValue(1, 2, "a")
	g, _ = g.SetCellValue(4, 1, "b")
	g, _ = g.SetCellValue(3, 4, "c")

	used, ok := g.UsedRange()
	require.True(t, ok)
	assert.Equal(t, region(1, 1, 4, 4), used)
}
