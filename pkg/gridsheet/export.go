package gridsheet

import (
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Export flattens a grid into its sparse interchange form. Merges are read
// from anchor spans in row-major order; widths are reported on row 0 hints
// and heights on column 0 hints.
func Export(g *grid.Grid) models.Table {
	rows, cols := g.Dimensions()
	t := models.Table{Rows: g.Values()}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell, _ := g.CellAt(r, c)

			if cell.IsAnchor() {
				rs, cs := cell.Spans()
				t.Merges = append(t.Merges, models.MergeRegion{
					StartRow: r,
					StartCol: c,
					EndRow:   r + rs - 1,
					EndCol:   c + cs - 1,
				})
			}

			hint := models.StyleHint{Row: r, Col: c}
			emit := false
			if cell.Style != nil {
				st := *cell.Style
				hint.BackgroundColorHex = st.BackgroundColor
				hint.TextColorHex = st.TextColor
				hint.Bold, hint.Italic, hint.Underline = st.Bold, st.Italic, st.Underline
				hint.HorizontalAlign, hint.VerticalAlign = st.HorizontalAlign, st.VerticalAlign
				emit = true
			}
			if w := g.ColumnWidth(c); r == 0 && w > 0 {
				hint.ColumnWidthPx = w
				emit = true
			}
			if h := g.RowHeight(r); c == 0 && h > 0 {
				hint.RowHeightPx = h
				emit = true
			}
			if emit {
				t.Styles = append(t.Styles, hint)
			}
		}
	}
	return t
}
