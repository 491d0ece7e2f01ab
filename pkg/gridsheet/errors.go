// Package gridsheet converts sparse spreadsheet tables into dense editable
// grids and back.
package gridsheet

import (
	"errors"
	"fmt"
)

// ErrMalformedMergeRegion indicates an imported merge region that is out of
// bounds or overlaps another region.
var ErrMalformedMergeRegion = errors.New("malformed merge region")

// ErrInvalidStyle indicates a style hint with an unknown alignment or a bad
// color.
var ErrInvalidStyle = errors.New("invalid style")

// ErrRowNotFound indicates that no row matched a lookup.
var ErrRowNotFound = errors.New("row not found")

// ConversionError represents an error while converting between sparse and
// dense forms.
type ConversionError struct {
	Stage string // "values", "styles", "merges", "query"
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error (%s): %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage string, err error) *ConversionError {
	return &ConversionError{
		Stage: stage,
		Err:   err,
	}
}
