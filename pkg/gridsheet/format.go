package gridsheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Formatter renders one raw value as display text.
type Formatter func(v any) string

// CellFormatter renders the raw value found at (row, col).
type CellFormatter func(row, col int, v any) string

var clockRx = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)

// PlainFormatter renders values as their string form; empty values become
// placeholder.
func PlainFormatter(placeholder string) Formatter {
	return func(v any) string {
		s := toText(v)
		if s == "" {
			return placeholder
		}
		return s
	}
}

// TimeFormatter renders time-of-day values as "HH:MM".
//
// Numbers are fractions of a day (0.5 is noon; the integer part is dropped).
// Strings shaped H:MM or HH:MM:SS are cut to a zero-padded HH:MM. Other
// values, including numbers too large to be a serial, pass through as text;
// empty ones become placeholder.
func TimeFormatter(placeholder string) Formatter {
	return func(v any) string {
		if f, ok := toFloat(v); ok && f >= 0 && f*86400 < math.MaxInt64 {
			total := int64(math.Round(f * 86400))
			hours := (total / 3600) % 24
			minutes := (total % 3600) / 60
			return fmt.Sprintf("%02d:%02d", hours, minutes)
		}
		s := strings.TrimSpace(toText(v))
		if m := clockRx.FindStringSubmatch(s); m != nil {
			h, _ := strconv.Atoi(m[1])
			return fmt.Sprintf("%02d:%s", h, m[2])
		}
		if s == "" {
			return placeholder
		}
		return s
	}
}

// Uniform applies f to every cell.
func Uniform(f Formatter) CellFormatter {
	return func(_, _ int, v any) string {
		return f(v)
	}
}

// Columns applies special to the listed columns below the first headerRows
// rows and base everywhere else.
func Columns(base, special Formatter, headerRows int, cols ...int) CellFormatter {
	set := make(map[int]struct{}, len(cols))
	for _, c := range cols {
		set[c] = struct{}{}
	}
	return func(row, col int, v any) string {
		if row >= headerRows {
			if _, ok := set[col]; ok {
				return special(v)
			}
		}
		return base(v)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

func toText(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(vv), 'f', -1, 32)
	case int:
		return strconv.Itoa(vv)
	case int64:
		return strconv.FormatInt(vv, 10)
	case bool:
		return strconv.FormatBool(vv)
	default:
		return fmt.Sprintf("%v", vv)
	}
}
