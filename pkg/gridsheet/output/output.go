// Package output renders grids and tables for the command line.
package output

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/coords"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
)

// ToJSON serializes v to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// RenderGrid writes the given rows of g as a text table headed by column
// labels. A nil rows slice renders every row. Cells hidden by a merge are
// shown blank.
func RenderGrid(w io.Writer, g *grid.Grid, rows []int) error {
	nrows, cols := g.Dimensions()
	if rows == nil {
		rows = make([]int, nrows)
		for r := range rows {
			rows[r] = r
		}
	}

	table := tablewriter.NewWriter(w)
	header := make([]any, 0, cols+1)
	header = append(header, "")
	for c := 0; c < cols; c++ {
		header = append(header, coords.IndexToColumnLabel(c))
	}
	table.Header(header...)

	for _, r := range rows {
		line := make([]string, 0, cols+1)
		line = append(line, strconv.Itoa(r+1))
		for c := 0; c < cols; c++ {
			cell, err := g.CellAt(r, c)
			if err != nil {
				return err
			}
			if cell.Hidden {
				line = append(line, "")
				continue
			}
			line = append(line, cell.Value)
		}
		if err := table.Append(line); err != nil {
			return err
		}
	}
	return table.Render()
}
