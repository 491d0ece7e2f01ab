package gridsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	g := planning()

	tests := []struct {
		src      string
		expected []int
	}{
		{`col("A") == "1234"`, []int{1, 3}},
		{`row[1] contains "Mar"`, []int{2}},
		{`index > 2`, []int{3}},
		{`any(row, # == "Pause")`, []int{1}},
		{`col("ZZ") == ""`, []int{1, 2, 3}},
		{`header[2] == "7h00" && row[2] != ""`, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			q, err := CompileQuery(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.src, q.String())

			rows, err := q.Match(g, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rows)
		})
	}
}

func TestCompileQueryErrors(t *testing.T) {
	for _, src := range []string{`row[`, `index + 1`, `unknown == 1`} {
		t.Run(src, func(t *testing.T) {
			_, err := CompileQuery(src)
			var convErr *ConversionError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, "query", convErr.Stage)
		})
	}
}
