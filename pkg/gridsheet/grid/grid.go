// Package grid implements the dense sheet grid: cells, merge bookkeeping,
// structural edits and selection queries.
//
// A Grid is a value. Every mutating operation returns a new *Grid and leaves
// the receiver untouched, so a grid can be read from several goroutines while
// the owner adopts new versions.
package grid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Baseline dimensions of a fresh planning grid.
const (
	DefaultRows = 50
	DefaultCols = 30
)

// ErrNegativeSize indicates a negative width, height or dimension.
var ErrNegativeSize = errors.New("negative size")

// Grid is a rectangular sheet of cells with merge regions and per-column
// widths / per-row heights.
type Grid struct {
	cells      [][]models.Cell
	index      *MergeIndex
	colWidths  []float64
	rowHeights []float64
}

// New returns an empty rows x cols grid with no merges.
// Negative dimensions are treated as zero.
func New(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	if rows == 0 {
		cols = 0
	}
	g := &Grid{
		cells:      make([][]models.Cell, rows),
		colWidths:  make([]float64, cols),
		rowHeights: make([]float64, rows),
	}
	for r := range g.cells {
		g.cells[r] = make([]models.Cell, cols)
	}
	return g
}

// NewDefault returns an empty grid of the baseline dimensions.
func NewDefault() *Grid {
	return New(DefaultRows, DefaultCols)
}

// Dimensions returns the row and column counts.
func (g *Grid) Dimensions() (rows, cols int) {
	if len(g.cells) == 0 {
		return 0, 0
	}
	return len(g.cells), len(g.cells[0])
}

func (g *Grid) inBounds(row, col int) bool {
	rows, cols := g.Dimensions()
	return row >= 0 && row < rows && col >= 0 && col < cols
}

func (g *Grid) checkBounds(row, col int) error {
	if !g.inBounds(row, col) {
		rows, cols := g.Dimensions()
		return outOfRange(row, col, rows, cols)
	}
	return nil
}

// CellAt returns a copy of the cell at (row, col).
func (g *Grid) CellAt(row, col int) (models.Cell, error) {
	if err := g.checkBounds(row, col); err != nil {
		return models.Cell{}, err
	}
	return g.cells[row][col].Clone(), nil
}

// Merges returns the merge regions currently applied.
func (g *Grid) Merges() []models.MergeRegion {
	return g.index.Regions()
}

// Index returns the merge index of the grid (nil when no merges were applied).
func (g *Grid) Index() *MergeIndex {
	return g.index
}

// ColumnWidth returns the width of column col in pixels, 0 when unset.
func (g *Grid) ColumnWidth(col int) float64 {
	if col < 0 || col >= len(g.colWidths) {
		return 0
	}
	return g.colWidths[col]
}

// RowHeight returns the height of row in pixels, 0 when unset.
func (g *Grid) RowHeight(row int) float64 {
	if row < 0 || row >= len(g.rowHeights) {
		return 0
	}
	return g.rowHeights[row]
}

// Values returns the value-only projection of the grid.
func (g *Grid) Values() [][]string {
	out := make([][]string, len(g.cells))
	for r, row := range g.cells {
		out[r] = make([]string, len(row))
		for c, cell := range row {
			out[r][c] = cell.Value
		}
	}
	return out
}

// SetCellValue returns a grid where (row, col) holds value.
// Covered cells of a merge are rejected with a *HiddenCellError.
func (g *Grid) SetCellValue(row, col int, value string) (*Grid, error) {
	if err := g.checkEditable(row, col); err != nil {
		return nil, err
	}
	ng := g.shallow()
	cells := cloneRow(g.cells[row])
	cells[col].Value = value
	ng.cells[row] = cells
	return ng, nil
}

// SetCellStyle returns a grid where (row, col) carries style.
// A zero style removes the cell's style.
func (g *Grid) SetCellStyle(row, col int, style models.Style) (*Grid, error) {
	if err := g.checkEditable(row, col); err != nil {
		return nil, err
	}
	ng := g.shallow()
	cells := cloneRow(g.cells[row])
	if style.IsZero() {
		cells[col].Style = nil
	} else {
		cells[col].Style = &style
	}
	ng.cells[row] = cells
	return ng, nil
}

func (g *Grid) checkEditable(row, col int) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	if anchor, ok := g.index.AnchorOf(row, col); ok {
		return &HiddenCellError{Row: row, Col: col, AnchorRow: anchor.Row, AnchorCol: anchor.Col}
	}
	return nil
}

// SetColumnWidth returns a grid where column col is px pixels wide.
func (g *Grid) SetColumnWidth(col int, px float64) (*Grid, error) {
	if err := g.checkBounds(0, col); err != nil {
		return nil, err
	}
	if px < 0 {
		return nil, fmt.Errorf("%w: column width %g", ErrNegativeSize, px)
	}
	ng := g.shallow()
	ng.colWidths[col] = px
	return ng, nil
}

// SetRowHeight returns a grid where row is px pixels high.
func (g *Grid) SetRowHeight(row int, px float64) (*Grid, error) {
	if row < 0 || row >= len(g.cells) {
		rows, cols := g.Dimensions()
		return nil, outOfRange(row, 0, rows, cols)
	}
	if px < 0 {
		return nil, fmt.Errorf("%w: row height %g", ErrNegativeSize, px)
	}
	ng := g.shallow()
	ng.rowHeights[row] = px
	return ng, nil
}

// ApplyMergeRegions returns a grid with regions stamped onto its cells:
// anchors get their span, covered cells are hidden, and flags left by a
// previous call are cleared. On error the receiver is unchanged and no grid
// is returned.
func (g *Grid) ApplyMergeRegions(regions []models.MergeRegion) (*Grid, error) {
	rows, cols := g.Dimensions()
	ix, err := BuildMergeIndex(rows, cols, regions)
	if err != nil {
		return nil, err
	}
	return g.stamp(g.cells, ix), nil
}

// InsertRow returns a grid with an empty row inserted before row at
// (at == rows appends). Regions starting at or below at move down one row;
// a region straddling the insertion line is left as is.
func (g *Grid) InsertRow(at int) (*Grid, error) {
	rows, cols := g.Dimensions()
	if at < 0 || at > rows {
		return nil, outOfRange(at, 0, rows, cols)
	}

	cells := make([][]models.Cell, 0, rows+1)
	cells = append(cells, g.cells[:at]...)
	cells = append(cells, make([]models.Cell, cols))
	cells = append(cells, g.cells[at:]...)

	regions := g.Merges()
	for i, m := range regions {
		if m.StartRow >= at {
			regions[i].StartRow++
			regions[i].EndRow++
		}
	}

	ng := &Grid{
		cells:      cells,
		colWidths:  append([]float64(nil), g.colWidths...),
		rowHeights: insertFloat(g.rowHeights, at),
	}
	return ng.restamp(regions)
}

// InsertRowStrict is InsertRow that refuses to split a merge region.
func (g *Grid) InsertRowStrict(at int) (*Grid, error) {
	for _, m := range g.Merges() {
		if m.StartRow < at && at <= m.EndRow {
			return nil, NewMergeError(m, nil, ErrStraddlingMerge)
		}
	}
	return g.InsertRow(at)
}

// InsertColumn returns a grid with an empty column inserted before column at
// (at == cols appends). Regions starting at or right of at move right one
// column; a region straddling the insertion line is left as is.
func (g *Grid) InsertColumn(at int) (*Grid, error) {
	rows, cols := g.Dimensions()
	if at < 0 || at > cols {
		return nil, outOfRange(0, at, rows, cols)
	}

	cells := make([][]models.Cell, rows)
	for r, row := range g.cells {
		nr := make([]models.Cell, 0, cols+1)
		nr = append(nr, row[:at]...)
		nr = append(nr, models.Cell{})
		nr = append(nr, row[at:]...)
		cells[r] = nr
	}

	regions := g.Merges()
	for i, m := range regions {
		if m.StartCol >= at {
			regions[i].StartCol++
			regions[i].EndCol++
		}
	}

	ng := &Grid{
		cells:      cells,
		colWidths:  g.colWidths,
		rowHeights: append([]float64(nil), g.rowHeights...),
	}
	if rows > 0 {
		ng.colWidths = insertFloat(g.colWidths, at)
	}
	return ng.restamp(regions)
}

// InsertColumnStrict is InsertColumn that refuses to split a merge region.
func (g *Grid) InsertColumnStrict(at int) (*Grid, error) {
	for _, m := range g.Merges() {
		if m.StartCol < at && at <= m.EndCol {
			return nil, NewMergeError(m, nil, ErrStraddlingMerge)
		}
	}
	return g.InsertColumn(at)
}

// Resize returns a grid of rows x cols keeping the overlapping cells.
// Shrinking below an existing merge region fails with ErrMergeOutOfBounds.
func (g *Grid) Resize(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeSize, rows, cols)
	}
	if rows == 0 {
		cols = 0
	}
	regions := g.Merges()
	for _, m := range regions {
		if m.EndRow >= rows || m.EndCol >= cols {
			return nil, NewMergeError(m, nil, ErrMergeOutOfBounds)
		}
	}

	ng := New(rows, cols)
	for r := 0; r < rows && r < len(g.cells); r++ {
		copy(ng.cells[r], g.cells[r])
	}
	copy(ng.colWidths, g.colWidths)
	copy(ng.rowHeights, g.rowHeights)
	return ng.restamp(regions)
}

// Cleared returns an empty grid with the same dimensions.
func (g *Grid) Cleared() *Grid {
	return New(g.Dimensions())
}

// UsedRange returns the bounding box of non-empty values.
func (g *Grid) UsedRange() (models.MergeRegion, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for r, row := range g.cells {
		for c, cell := range row {
			if cell.Value == "" {
				continue
			}
			if minRow < 0 || r < minRow {
				minRow = r
			}
			if maxRow < 0 || r > maxRow {
				maxRow = r
			}
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if maxCol < 0 || c > maxCol {
				maxCol = c
			}
		}
	}
	if minRow < 0 {
		return models.MergeRegion{}, false
	}
	return models.MergeRegion{StartRow: minRow, StartCol: minCol, EndRow: maxRow, EndCol: maxCol}, true
}

func (g *Grid) restamp(regions []models.MergeRegion) (*Grid, error) {
	rows, cols := g.Dimensions()
	ix, err := BuildMergeIndex(rows, cols, regions)
	if err != nil {
		return nil, err
	}
	return g.stamp(g.cells, ix), nil
}

// stamp copies cells into fresh rows, clears span/hidden flags and applies ix.
func (g *Grid) stamp(cells [][]models.Cell, ix *MergeIndex) *Grid {
	ng := &Grid{
		cells:      make([][]models.Cell, len(cells)),
		index:      ix,
		colWidths:  append([]float64(nil), g.colWidths...),
		rowHeights: append([]float64(nil), g.rowHeights...),
	}
	for r, row := range cells {
		nr := cloneRow(row)
		for c := range nr {
			nr[c].RowSpan, nr[c].ColSpan, nr[c].Hidden = 0, 0, false
		}
		ng.cells[r] = nr
	}
	for anchor, span := range ix.anchors {
		cell := &ng.cells[anchor.Row][anchor.Col]
		cell.RowSpan, cell.ColSpan = span.RowSpan, span.ColSpan
	}
	for pos := range ix.covered {
		ng.cells[pos.Row][pos.Col].Hidden = true
	}
	return ng
}

// shallow copies the grid header; rows are shared until replaced.
func (g *Grid) shallow() *Grid {
	return &Grid{
		cells:      append([][]models.Cell(nil), g.cells...),
		index:      g.index,
		colWidths:  append([]float64(nil), g.colWidths...),
		rowHeights: append([]float64(nil), g.rowHeights...),
	}
}

func cloneRow(row []models.Cell) []models.Cell {
	return append(make([]models.Cell, 0, len(row)), row...)
}

func insertFloat(s []float64, at int) []float64 {
	out := make([]float64, 0, len(s)+1)
	out = append(out, s[:at]...)
	out = append(out, 0)
	return append(out, s[at:]...)
}

// FromValues returns a grid holding values. Ragged rows are padded with empty
// cells up to the longest row.
func FromValues(values [][]string) *Grid {
	cols := 0
	for _, row := range values {
		cols = max(cols, len(row))
	}
	g := New(len(values), cols)
	for r, row := range values {
		for c, v := range row {
			g.cells[r][c].Value = v
		}
	}
	return g
}
