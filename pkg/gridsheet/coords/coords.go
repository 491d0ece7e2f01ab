// Package coords maps between zero-based grid indices and spreadsheet-style
// references such as "C" or "C4:F9".
package coords

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidLabel indicates a malformed column label or cell reference.
var ErrInvalidLabel = errors.New("invalid label")

// IndexToColumnLabel converts a 0-based column index to its label.
// 0→"A", 25→"Z", 26→"AA", 702→"AAA". Negative indices yield "".
func IndexToColumnLabel(n int) string {
	if n < 0 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for n++; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// ColumnLabelToIndex converts a column label to a 0-based index.
// Lower-case letters are accepted.
func ColumnLabelToIndex(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: empty column label", ErrInvalidLabel)
	}
	n := 0
	for i := 0; i < len(label); i++ {
		ch := label[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
		case ch >= 'a' && ch <= 'z':
			ch -= 'a' - 'A'
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
		}
		if n > (math.MaxInt-26)/26 {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidLabel, label)
		}
		n = n*26 + int(ch-'A'+1)
	}
	return n - 1, nil
}

// CellName formats a 0-based (row, col) pair as a reference like "C4".
func CellName(row, col int) string {
	return IndexToColumnLabel(col) + strconv.Itoa(row+1)
}

// ParseCellName parses "C4" (or "$C$4") into 0-based row 3, col 2.
func ParseCellName(name string) (row, col int, err error) {
	name = strings.ReplaceAll(strings.TrimSpace(name), "$", "")
	i := 0
	for i < len(name) && isAlpha(name[i]) {
		i++
	}
	if i == 0 || i == len(name) {
		return 0, 0, fmt.Errorf("%w: cell name %q", ErrInvalidLabel, name)
	}
	col, err = ColumnLabelToIndex(name[:i])
	if err != nil {
		return 0, 0, err
	}
	rowNum, err := strconv.Atoi(name[i:])
	if err != nil || rowNum < 1 || name[i] == '+' {
		return 0, 0, fmt.Errorf("%w: row in cell name %q", ErrInvalidLabel, name)
	}
	return rowNum - 1, col, nil
}

// RangeName formats an inclusive rectangle as "C4:F9".
// A single-cell rectangle collapses to "C4".
func RangeName(startRow, startCol, endRow, endCol int) string {
	start := CellName(startRow, startCol)
	if startRow == endRow && startCol == endCol {
		return start
	}
	return start + ":" + CellName(endRow, endCol)
}

// ParseRangeName parses "C4:F9" or a single "C4" into an inclusive rectangle.
// Corners are returned as written; callers normalise if needed.
func ParseRangeName(ref string) (startRow, startCol, endRow, endCol int, err error) {
	parts := strings.Split(strings.TrimSpace(ref), ":")
	switch len(parts) {
	case 1:
		startRow, startCol, err = ParseCellName(parts[0])
		return startRow, startCol, startRow, startCol, err
	case 2:
		if startRow, startCol, err = ParseCellName(parts[0]); err != nil {
			return 0, 0, 0, 0, err
		}
		if endRow, endCol, err = ParseCellName(parts[1]); err != nil {
			return 0, 0, 0, 0, err
		}
		return startRow, startCol, endRow, endCol, nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("%w: range %q", ErrInvalidLabel, ref)
	}
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
