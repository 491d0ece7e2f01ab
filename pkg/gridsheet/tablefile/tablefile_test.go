package tablefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

func TestDecodeJSON5(t *testing.T) {
	doc := `{
  // planning for monday
  rows: [
    ["Matricule", "7h00", "7h30"],
    [1234, 0.3125, null],
  ],
  merges: [{start_row: 1, start_col: 1, end_row: 1, end_col: 2}],
  styles: [{row: 0, col: 1, bold: true, column_width_px: 80}],
}`
	tbl, err := Decode([]byte(doc), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, [][]any{
		{"Matricule", "7h00", "7h30"},
		{1234.0, 0.3125, nil},
	}, tbl.Rows)
	assert.Equal(t, []models.MergeRegion{{StartRow: 1, StartCol: 1, EndRow: 1, EndCol: 2}}, tbl.Merges)
	assert.Equal(t, []models.StyleHint{{Row: 0, Col: 1, Bold: true, ColumnWidthPx: 80}}, tbl.Styles)
}

func TestDecodeYAML(t *testing.T) {
	doc := `
rows:
  - [Matricule, Nom]
  - [1234, Dupont]
merges:
  - {start_row: 0, start_col: 0, end_row: 0, end_col: 1}
`
	tbl, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"Matricule", "Nom"}, {1234, "Dupont"}}, tbl.Rows)
	assert.Len(t, tbl.Merges, 1)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`{rows: [`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte(`{}`), Format("csv"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = FormatOf("planning.xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSaveAndLoad(t *testing.T) {
	in := models.Table{
		Rows:   [][]string{{"a", "b"}, {"c", ""}},
		Merges: []models.MergeRegion{{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 0}},
		Styles: []models.StyleHint{{Row: 0, Col: 1, TextColorHex: "FF0000"}},
	}

	for _, name := range []string{"table.json", "table.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, in))

			out, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, in.Sparse(), out)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
