package grid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/coords"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// ErrIndexOutOfRange indicates a coordinate outside the grid dimensions.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrCellHidden indicates an edit on a cell covered by a merge.
var ErrCellHidden = errors.New("cell is hidden by merge")

// ErrOverlappingMerge indicates two merge regions claiming the same cell.
var ErrOverlappingMerge = errors.New("overlapping merge")

// ErrMergeOutOfBounds indicates a merge region outside the grid dimensions
// or with inverted corners.
var ErrMergeOutOfBounds = errors.New("merge region out of bounds")

// ErrStraddlingMerge indicates a strict insertion through a merge region.
var ErrStraddlingMerge = errors.New("insertion splits merge region")

// MergeError reports the region that failed merge index construction.
type MergeError struct {
	Region models.MergeRegion
	Other  *models.MergeRegion // set for overlaps
	Err    error
}

func (e *MergeError) Error() string {
	if e.Other != nil {
		return fmt.Sprintf("merge %s: %v with %s", e.Region, e.Err, *e.Other)
	}
	return fmt.Sprintf("merge %s: %v", e.Region, e.Err)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

// NewMergeError creates a new MergeError.
func NewMergeError(region models.MergeRegion, other *models.MergeRegion, err error) *MergeError {
	return &MergeError{
		Region: region,
		Other:  other,
		Err:    err,
	}
}

// HiddenCellError reports an edit on a covered cell together with the anchor
// that owns it, so callers can redirect the edit.
type HiddenCellError struct {
	Row, Col             int
	AnchorRow, AnchorCol int
}

func (e *HiddenCellError) Error() string {
	return fmt.Sprintf("cell %s is hidden by merge anchored at %s",
		coords.CellName(e.Row, e.Col), coords.CellName(e.AnchorRow, e.AnchorCol))
}

func (e *HiddenCellError) Unwrap() error {
	return ErrCellHidden
}

func outOfRange(row, col, rows, cols int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrIndexOutOfRange, row, col, rows, cols)
}
