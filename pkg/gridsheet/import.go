package gridsheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ImportOptions configures Import.
type ImportOptions struct {
	// Format renders raw values. Nil means PlainFormatter("") everywhere.
	Format CellFormatter
}

var hexColorRx = regexp.MustCompile(`^[0-9A-F]{6}$`)

// Import builds a dense grid from a sparse table. The whole import fails if
// any style hint or merge region is invalid; no partial grid is returned.
func Import(table models.SparseTable, opts ImportOptions) (*grid.Grid, error) {
	format := opts.Format
	if format == nil {
		format = Uniform(PlainFormatter(""))
	}

	values := make([][]string, len(table.Rows))
	for r, row := range table.Rows {
		values[r] = make([]string, len(row))
		for c, v := range row {
			values[r][c] = format(r, c, v)
		}
	}
	g := grid.FromValues(values)

	// pad cells that exist only because the table is ragged
	rows, cols := g.Dimensions()
	for r := 0; r < rows; r++ {
		for c := len(values[r]); c < cols; c++ {
			if s := format(r, c, nil); s != "" {
				var err error
				if g, err = g.SetCellValue(r, c, s); err != nil {
					return nil, NewConversionError("values", err)
				}
			}
		}
	}

	g, err := applyStyleHints(g, table.Styles)
	if err != nil {
		return nil, NewConversionError("styles", err)
	}

	g, err = g.ApplyMergeRegions(table.Merges)
	if err != nil {
		return nil, NewConversionError("merges", fmt.Errorf("%w: %w", ErrMalformedMergeRegion, err))
	}
	return g, nil
}

func applyStyleHints(g *grid.Grid, hints []models.StyleHint) (*grid.Grid, error) {
	for _, h := range hints {
		if _, err := g.CellAt(h.Row, h.Col); err != nil {
			return nil, err
		}
		style, err := NormalizeStyle(h.CellStyle())
		if err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", h.Row, h.Col, err)
		}
		if h.ColumnWidthPx < 0 || h.RowHeightPx < 0 {
			return nil, fmt.Errorf("%w: negative size at (%d,%d)", ErrInvalidStyle, h.Row, h.Col)
		}

		if !style.IsZero() {
			if g, err = g.SetCellStyle(h.Row, h.Col, style); err != nil {
				return nil, err
			}
		}
		if h.ColumnWidthPx > 0 {
			if g, err = g.SetColumnWidth(h.Col, h.ColumnWidthPx); err != nil {
				return nil, err
			}
		}
		if h.RowHeightPx > 0 {
			if g, err = g.SetRowHeight(h.Row, h.RowHeightPx); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// NormalizeStyle validates a style and brings colors and alignments into
// canonical form: upper-case RRGGBB colors and left/center/right,
// top/center/bottom alignments.
func NormalizeStyle(s models.Style) (models.Style, error) {
	var err error
	if s.BackgroundColor, err = normalizeColor(s.BackgroundColor); err != nil {
		return models.Style{}, err
	}
	if s.TextColor, err = normalizeColor(s.TextColor); err != nil {
		return models.Style{}, err
	}

	switch h := strings.ToLower(s.HorizontalAlign); h {
	case "", "general":
		s.HorizontalAlign = ""
	case models.AlignLeft, models.AlignCenter, models.AlignRight:
		s.HorizontalAlign = h
	default:
		return models.Style{}, fmt.Errorf("%w: horizontal alignment %q", ErrInvalidStyle, s.HorizontalAlign)
	}

	switch v := strings.ToLower(s.VerticalAlign); v {
	case "":
	case models.AlignTop, models.AlignBottom:
		s.VerticalAlign = v
	case models.AlignMiddle, "middle":
		s.VerticalAlign = models.AlignMiddle
	default:
		return models.Style{}, fmt.Errorf("%w: vertical alignment %q", ErrInvalidStyle, s.VerticalAlign)
	}
	return s, nil
}

func normalizeColor(hex string) (string, error) {
	if hex == "" {
		return "", nil
	}
	c := strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(c) == 8 {
		c = c[2:]
	}
	if !hexColorRx.MatchString(c) {
		return "", fmt.Errorf("%w: color %q", ErrInvalidStyle, hex)
	}
	return c, nil
}
