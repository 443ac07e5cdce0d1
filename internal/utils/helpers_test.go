package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"$70,000", 70000, true},
		{" 95000 ", 95000, true},
		{"120K", 120000, true},
		{"$1.5k", 1500, true},
		{"0.1", 0.1, true},
		{"12%", 0.12, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"$", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAmount(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.InDelta(t, tt.want, got, 1e-9, tt.input)
	}
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "$95,424", FormatSalary(95423.6))
	assert.Equal(t, "$0", FormatSalary(0))
	assert.Equal(t, "$1,000,000", FormatSalary(999999.5))
	assert.Equal(t, "-$1,250", FormatSalary(-1250))
	assert.Equal(t, "NaN", FormatSalary(math.NaN()))
	assert.Equal(t, "+Inf", FormatSalary(math.Inf(1)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "2.5%", FormatPercent(0.025))
	assert.Equal(t, "10%", FormatPercent(0.1))
}
