package gridsheet

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/coords"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
)

// Query is a compiled boolean row filter such as
//
//	col("A") == "1234" || row[1] contains "Dupont"
//
// The expression sees row (the row values), index (0-based row number),
// header (row 0 values) and col(label) (the value in a labelled column, ""
// when absent).
type Query struct {
	src     string
	program *vm.Program
}

// CompileQuery compiles src.
func CompileQuery(src string) (*Query, error) {
	program, err := expr.Compile(src, expr.Env(queryEnv(nil, nil, 0)), expr.AsBool())
	if err != nil {
		return nil, NewConversionError("query", fmt.Errorf("compile %q: %w", src, err))
	}
	return &Query{src: src, program: program}, nil
}

func (q *Query) String() string { return q.src }

// Match returns the rows after the header rows for which the query holds.
func (q *Query) Match(g *grid.Grid, headerRows int) ([]int, error) {
	values := g.Values()
	var header []string
	if len(values) > 0 {
		header = values[0]
	}

	var out []int
	for r := max(headerRows, 0); r < len(values); r++ {
		res, err := expr.Run(q.program, queryEnv(values[r], header, r))
		if err != nil {
			return nil, NewConversionError("query", fmt.Errorf("row %d: %w", r+1, err))
		}
		if ok, _ := res.(bool); ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func queryEnv(row, header []string, index int) map[string]any {
	if row == nil {
		row = []string{}
	}
	if header == nil {
		header = []string{}
	}
	return map[string]any{
		"row":    row,
		"header": header,
		"index":  index,
		"col": func(label string) string {
			c, err := coords.ColumnLabelToIndex(label)
			if err != nil || c >= len(row) {
				return ""
			}
			return row[c]
		},
	}
}
