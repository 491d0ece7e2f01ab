// Package tablefile reads and writes sparse tables as JSON, JSON5 or YAML
// documents.
package tablefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ErrUnsupportedFormat indicates a file extension with no known codec.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// Format identifies a table document encoding.
type Format string

const (
	// FormatJSON reads JSON and JSON5 documents and writes indented JSON.
	FormatJSON Format = "json"
	// FormatYAML reads and writes YAML documents.
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from the file extension. JSON5 documents are
// read as JSON.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".json5":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load reads a sparse table from path.
func Load(path string) (models.SparseTable, error) {
	format, err := FormatOf(path)
	if err != nil {
		return models.SparseTable{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return models.SparseTable{}, err
	}
	return Decode(data, format)
}

// Decode parses a sparse table. JSON input may use JSON5 syntax (comments,
// trailing commas, unquoted keys).
func Decode(data []byte, format Format) (models.SparseTable, error) {
	var t models.SparseTable
	var err error
	switch format {
	case FormatJSON:
		err = json5.Unmarshal(data, &t)
	case FormatYAML:
		err = yaml.Unmarshal(data, &t)
	default:
		return t, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return models.SparseTable{}, fmt.Errorf("decode %s table: %w", format, err)
	}
	return t, nil
}

// Save writes t to path in the format implied by its extension.
func Save(path string, t models.Table) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(t, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(t)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
