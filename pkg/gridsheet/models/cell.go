// Package models defines the value types shared by the grid, the converter
// and the file collaborators.
package models

// Horizontal alignment values.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Vertical alignment values.
const (
	AlignTop    = "top"
	AlignMiddle = "center"
	AlignBottom = "bottom"
)

// Style holds the visual attributes carried by a cell.
type Style struct {
	// BackgroundColor is the fill color as upper-case RRGGBB.
	BackgroundColor string `json:"background_color,omitempty"`
	// TextColor is the font color as upper-case RRGGBB.
	TextColor string `json:"text_color,omitempty"`
	// Bold marks bold text.
	Bold bool `json:"bold,omitempty"`
	// Italic marks italic text.
	Italic bool `json:"italic,omitempty"`
	// Underline marks underlined text.
	Underline bool `json:"underline,omitempty"`
	// HorizontalAlign is one of left, center, right (empty means default).
	HorizontalAlign string `json:"horizontal_align,omitempty"`
	// VerticalAlign is one of top, center, bottom (empty means default).
	VerticalAlign string `json:"vertical_align,omitempty"`
}

// IsZero reports whether the style carries no attribute.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Cell is one position of the dense grid.
//
// A hidden cell is covered by a merge anchored elsewhere and never carries a
// span greater than one. Column widths and row heights are not stored on
// cells; the grid keeps them per column and per row.
type Cell struct {
	// Value is the display text.
	Value string `json:"value"`
	// RowSpan is the number of rows an anchor covers (0 reads as 1).
	RowSpan int `json:"row_span,omitempty"`
	// ColSpan is the number of columns an anchor covers (0 reads as 1).
	ColSpan int `json:"col_span,omitempty"`
	// Hidden marks a cell covered by another cell's merge.
	Hidden bool `json:"hidden,omitempty"`
	// Style is nil for unstyled cells.
	Style *Style `json:"style,omitempty"`
}

// Spans returns the row and column span with absent values read as 1.
func (c Cell) Spans() (rowSpan, colSpan int) {
	rowSpan, colSpan = c.RowSpan, c.ColSpan
	if rowSpan < 1 {
		rowSpan = 1
	}
	if colSpan < 1 {
		colSpan = 1
	}
	return rowSpan, colSpan
}

// IsAnchor reports whether the cell spans more than itself.
func (c Cell) IsAnchor() bool {
	rs, cs := c.Spans()
	return rs > 1 || cs > 1
}

// Clone returns a copy that shares no memory with c.
func (c Cell) Clone() Cell {
	if c.Style != nil {
		st := *c.Style
		c.Style = &st
	}
	return c
}
