package gridsheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

type ConvertSuite struct {
	suite.Suite
}

func TestConvertSuite(t *testing.T) {
	suite.Run(t, new(ConvertSuite))
}

func (s *ConvertSuite) TestSingleCellRoundTrip() {
	g, err := Import(models.SparseTable{Rows: [][]any{{"x"}}}, ImportOptions{})
	s.Require().NoError(err)

	out := Export(g)
	s.Equal([][]string{{"x"}}, out.Rows)
	s.Empty(out.Merges)
	s.Empty(out.Styles)
}

func (s *ConvertSuite) TestMergeRoundTrip() {
	in := models.SparseTable{
		Rows: [][]any{
			{"Nom", nil, "Total"},
			{nil, nil, 3},
			{"a", "b", "c"},
		},
		Merges: []models.MergeRegion{{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1}},
	}

	g, err := Import(in, ImportOptions{})
	s.Require().NoError(err)

	anchor, err := g.CellAt(0, 0)
	s.Require().NoError(err)
	rs, cs := anchor.Spans()
	s.Equal(2, rs)
	s.Equal(2, cs)
	for _, pos := range [][2]int{{0, 1}, {1, 0}, {1, 1}} {
		cell, err := g.CellAt(pos[0], pos[1])
		s.Require().NoError(err)
		s.True(cell.Hidden, "cell %v", pos)
	}

	out := Export(g)
	s.Equal([][]string{{"Nom", "", "Total"}, {"", "", "3"}, {"a", "b", "c"}}, out.Rows)
	s.Equal(in.Merges, out.Merges)

	again, err := Import(out.Sparse(), ImportOptions{})
	s.Require().NoError(err)
	s.Equal(g.Values(), again.Values())
	s.Equal(g.Merges(), again.Merges())
}

func (s *ConvertSuite) TestRaggedRowsArePadded() {
	in := models.SparseTable{Rows: [][]any{
		{"a", "b"},
		{1, 2, 3, 4},
		{"z"},
	}}

	g, err := Import(in, ImportOptions{})
	s.Require().NoError(err)

	rows, cols := g.Dimensions()
	s.Equal(3, rows)
	s.Equal(4, cols)
	s.Equal([][]string{
		{"a", "b", "", ""},
		{"1", "2", "3", "4"},
		{"z", "", "", ""},
	}, Export(g).Rows)
}

func (s *ConvertSuite) TestPaddingUsesPlaceholder() {
	in := models.SparseTable{Rows: [][]any{{"a", "b"}, {"c"}}}
	g, err := Import(in, ImportOptions{Format: Uniform(PlainFormatter("-"))})
	s.Require().NoError(err)
	s.Equal([][]string{{"a", "b"}, {"c", "-"}}, g.Values())
}

func (s *ConvertSuite) TestEmptyTable() {
	g, err := Import(models.SparseTable{}, ImportOptions{})
	s.Require().NoError(err)

	rows, cols := g.Dimensions()
	s.Zero(rows)
	s.Zero(cols)
	s.Empty(Export(g).Rows)
}

func (s *ConvertSuite) TestMalformedMerges() {
	tests := []struct {
		name     string
		merges   []models.MergeRegion
		sentinel error
	}{
		{"out of bounds", []models.MergeRegion{{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}}, grid.ErrMergeOutOfBounds},
		{"overlap", []models.MergeRegion{
			{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1},
			{StartRow: 1, StartCol: 1, EndRow: 1, EndCol: 1},
		}, grid.ErrOverlappingMerge},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			g, err := Import(models.SparseTable{
				Rows:   [][]any{{"a", "b"}, {"c", "d"}},
				Merges: tt.merges,
			}, ImportOptions{})
			s.Nil(g)
			s.ErrorIs(err, ErrMalformedMergeRegion)
			s.ErrorIs(err, tt.sentinel)

			var convErr *ConversionError
			s.Require().True(errors.As(err, &convErr))
			s.Equal("merges", convErr.Stage)
		})
	}
}

func (s *ConvertSuite) TestStyleHints() {
	in := models.SparseTable{
		Rows: [][]any{{"a", "b"}, {"c", "d"}},
		Styles: []models.StyleHint{
			{Row: 0, Col: 1, BackgroundColorHex: "#ffc000", Bold: true, HorizontalAlign: "Center", ColumnWidthPx: 120},
			{Row: 1, Col: 0, TextColorHex: "FF112233", VerticalAlign: "middle", RowHeightPx: 30},
		},
	}

	g, err := Import(in, ImportOptions{})
	s.Require().NoError(err)

	cell, _ := g.CellAt(0, 1)
	s.Require().NotNil(cell.Style)
	s.Equal(models.Style{BackgroundColor: "FFC000", Bold: true, HorizontalAlign: models.AlignCenter}, *cell.Style)
	s.Equal(120.0, g.ColumnWidth(1))

	cell, _ = g.CellAt(1, 0)
	s.Require().NotNil(cell.Style)
	s.Equal(models.Style{TextColor: "112233", VerticalAlign: models.AlignMiddle}, *cell.Style)
	s.Equal(30.0, g.RowHeight(1))

	out := Export(g)
	s.ElementsMatch([]models.StyleHint{
		{Row: 0, Col: 1, BackgroundColorHex: "FFC000", Bold: true, HorizontalAlign: models.AlignCenter, ColumnWidthPx: 120},
		{Row: 1, Col: 0, TextColorHex: "112233", VerticalAlign: models.AlignMiddle, RowHeightPx: 30},
	}, out.Styles)
}

func (s *ConvertSuite) TestInvalidStyleHints() {
	tests := []struct {
		name string
		hint models.StyleHint
	}{
		{"bad color", models.StyleHint{BackgroundColorHex: "orange"}},
		{"bad alignment", models.StyleHint{HorizontalAlign: "justify-ish"}},
		{"negative width", models.StyleHint{ColumnWidthPx: -1}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := Import(models.SparseTable{
				Rows:   [][]any{{"a"}},
				Styles: []models.StyleHint{tt.hint},
			}, ImportOptions{})
			s.ErrorIs(err, ErrInvalidStyle)
		})
	}

	_, err := Import(models.SparseTable{
		Rows:   [][]any{{"a"}},
		Styles: []models.StyleHint{{Row: 3, Col: 0, Bold: true}},
	}, ImportOptions{})
	s.ErrorIs(err, grid.ErrIndexOutOfRange)
}
