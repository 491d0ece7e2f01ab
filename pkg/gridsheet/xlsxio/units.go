// Package xlsxio reads and writes sparse tables as xlsx worksheets.
package xlsxio

import (
	"math"
	"strings"
)

// Sizes excelize reports for columns and rows nobody resized.
const (
	DefaultColWidth  = 9.140625
	DefaultRowHeight = 15.0
)

// Screen conversions at 96 DPI. A column width unit is roughly one digit of
// the default font.
const (
	PixelsPerWidthUnit = 8.3
	PixelsPerPoint     = 1.333
)

// ColWidthToPixels converts an Excel column width to pixels.
func ColWidthToPixels(width float64) float64 {
	return round2(width * PixelsPerWidthUnit)
}

// PixelsToColWidth converts pixels to an Excel column width.
func PixelsToColWidth(px float64) float64 {
	return px / PixelsPerWidthUnit
}

// PointsToPixels converts a row height in points to pixels.
func PointsToPixels(pt float64) float64 {
	return round2(pt * PixelsPerPoint)
}

// PixelsToPoints converts pixels to a row height in points.
func PixelsToPoints(px float64) float64 {
	return px / PixelsPerPoint
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// normalizeColor turns "#RRGGBB", "AARRGGBB" or "RRGGBB" into "RRGGBB".
// Theme and indexed colors come back empty from excelize and stay empty.
func normalizeColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(c, "#"))
	if len(c) == 8 {
		c = c[2:]
	}
	if len(c) != 6 {
		return ""
	}
	return c
}
