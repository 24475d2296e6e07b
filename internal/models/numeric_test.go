package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"$1,250,000", 1250000, true},
		{"1250000", 1250000, true},
		{"1.25M", 1250000, true},
		{"$2m", 2000000, true},
		{"750K", 750000, true},
		{"(500,000)", -500000, true},
		{"-$300", -300, true},
		{"  42.5 ", 42.5, true},
		{"", 0, false},
		{"-", 0, false},
		{"TBD", 0, false},
		{"$", 0, false},
		{"M", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	assert.Equal(t, 0.0, CoerceAmount("not a number"))
	assert.Equal(t, 0.0, CoerceAmount(""))
	assert.Equal(t, 3500000.0, CoerceAmount("$3,500,000"))
}

func TestParseCount(t *testing.T) {
	n, ok := ParseCount("3")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = ParseCount("2.7")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = ParseCount("")
	assert.False(t, ok)

	_, ok = ParseCount("three")
	assert.False(t, ok)
}

func TestFinite(t *testing.T) {
	assert.Equal(t, 0.0, Finite(math.NaN()))
	assert.Equal(t, 0.0, Finite(math.Inf(-1)))
	assert.Equal(t, 12.5, Finite(12.5))
	assert.Equal(t, 0.0, *Float(math.NaN()))
}
