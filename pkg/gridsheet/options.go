package gridsheet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/coords"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
)

// Options configures how tables are imported and edited.
type Options struct {
	// Placeholder renders empty cells outside time columns.
	Placeholder string `yaml:"placeholder"`
	// TimePlaceholder renders empty cells inside time columns.
	TimePlaceholder string `yaml:"time_placeholder"`
	// TimeColumns lists column labels (e.g. "C", "H") formatted as HH:MM.
	TimeColumns []string `yaml:"time_columns"`
	// HeaderRows is the number of leading rows left unformatted and skipped by
	// lookups. If nil, defaults to 1.
	HeaderRows *int `yaml:"header_rows"`
	// KeyColumn is the label of the column holding row identifiers.
	// If empty, defaults to "A".
	KeyColumn string `yaml:"key_column"`
	// DefaultRows and DefaultCols size a fresh empty grid.
	DefaultRows int `yaml:"default_rows"`
	DefaultCols int `yaml:"default_cols"`
	// StrictInsert rejects row/column insertions that split a merge region.
	StrictInsert bool `yaml:"strict_insert"`
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		TimePlaceholder: "--:--",
		DefaultRows:     grid.DefaultRows,
		DefaultCols:     grid.DefaultCols,
	}
}

// LoadOptions reads YAML options from path on top of DefaultOptions.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options %s: %w", path, err)
	}
	return opts, nil
}

// HeaderRowCount returns the number of header rows.
func (o Options) HeaderRowCount() int {
	if o.HeaderRows != nil {
		return max(*o.HeaderRows, 0)
	}
	return 1
}

// ShouldFormatTimes returns whether any column is formatted as time.
func (o Options) ShouldFormatTimes() bool {
	return len(o.TimeColumns) > 0
}

// KeyColumnIndex returns the 0-based index of the key column.
func (o Options) KeyColumnIndex() (int, error) {
	if o.KeyColumn == "" {
		return 0, nil
	}
	return coords.ColumnLabelToIndex(o.KeyColumn)
}

// ImportOptions builds the converter options described by o.
func (o Options) ImportOptions() (ImportOptions, error) {
	base := PlainFormatter(o.Placeholder)
	if !o.ShouldFormatTimes() {
		return ImportOptions{Format: Uniform(base)}, nil
	}
	cols := make([]int, 0, len(o.TimeColumns))
	for _, label := range o.TimeColumns {
		c, err := coords.ColumnLabelToIndex(label)
		if err != nil {
			return ImportOptions{}, fmt.Errorf("time column: %w", err)
		}
		cols = append(cols, c)
	}
	return ImportOptions{
		Format: Columns(base, TimeFormatter(o.TimePlaceholder), o.HeaderRowCount(), cols...),
	}, nil
}

// EmptyGrid returns a fresh grid of the configured default size.
func (o Options) EmptyGrid() *grid.Grid {
	return grid.New(o.DefaultRows, o.DefaultCols)
}
