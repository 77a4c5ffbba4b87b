package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{name: "already two decimals", amount: 3.33, expected: 3.33},
		{name: "rounds up past midpoint", amount: 2.006, expected: 2.01},
		{name: "third of ten", amount: 10.0 / 3, expected: 3.33},
		{name: "negative remainder", amount: -4.999, expected: -5},
		{name: "tiny drift collapses", amount: 0.004, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round(tt.amount), 1e-9)
		})
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(0))
	assert.True(t, IsZero(0.004))
	assert.False(t, IsZero(0.01))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{amount: 5, expected: "5"},
		{amount: 5.5, expected: "5.5"},
		{amount: 10.0 / 3, expected: "3.33"},
		{amount: 0.1, expected: "0.1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Format(tt.amount))
	}
}
