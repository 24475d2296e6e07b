package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary field that may arrive as "$1,250,000",
// "1.25M", "750K", "(500,000)" or a bare number. ok is false for empty or
// malformed input.
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = strings.TrimPrefix(s, "-")
	}

	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	multiplier := decimal.NewFromInt(1)
	switch {
	case strings.HasSuffix(strings.ToUpper(s), "M"):
		multiplier = decimal.NewFromInt(1000000)
		s = s[:len(s)-1]
	case strings.HasSuffix(strings.ToUpper(s), "K"):
		multiplier = decimal.NewFromInt(1000)
		s = s[:len(s)-1]
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	d = d.Mul(multiplier)
	if negative {
		d = d.Neg()
	}

	f, _ := d.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CoerceAmount is ParseAmount with malformed input resolved to 0
func CoerceAmount(raw string) float64 {
	f, ok := ParseAmount(raw)
	if !ok {
		return 0
	}
	return f
}

// ParseCount parses an integer count such as contract years. Decimal input is
// truncated toward zero.
func ParseCount(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return int(d.IntPart()), true
}

// Finite returns v, or 0 when v is NaN or infinite
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
