package util

import (
	"math"
	"strconv"
	"strings"

	"tablex/internal/sheet"
)

// CoerceNumber returns the numeric value of c, or def when c is absent or
// not a finite number.
func CoerceNumber(c sheet.Cell, def *float64) *float64 {
	if !c.Present {
		return def
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return def
	}
	return FloatPtr(parsed)
}

// CoerceString returns the trimmed text of c, or "" when absent.
func CoerceString(c sheet.Cell) string {
	if !c.Present {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }

func BoolPtr(v bool) *bool { return &v }
