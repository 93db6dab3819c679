package metric

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToClampedPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    PercentLike
		expected float64
	}{
		{"formatted percent", Formatted("53.54%"), 53.54},
		{"formatted with whitespace", Formatted("  53.54%  "), 53.54},
		{"formatted above range", Formatted("150%"), 100},
		{"formatted below range", Formatted("-5%"), 0},
		{"bare numeric string", Formatted("42"), 42},
		{"fraction-looking string stays tiny", Formatted("0.53"), 0.53},
		{"garbage string", Formatted("n/a"), 0},
		{"empty string", Formatted(""), 0},
		{"raw number", Number(61.9), 61.9},
		{"raw number above range", Number(250), 100},
		{"raw number below range", Number(-3), 0},
		{"nan number", Number(math.NaN()), 0},
		{"positive infinity", Number(math.Inf(1)), 100},
		{"missing", Missing, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToClampedPercent(tt.value)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.False(t, math.IsNaN(got))
			assert.False(t, math.IsInf(got, 0))
		})
	}
}

// Clamping is idempotent: feeding a clamped result back changes nothing.
func TestToClampedPercentIdempotent(t *testing.T) {
	for _, value := range []PercentLike{Formatted("53.54%"), Number(250), Formatted("junk")} {
		once := ToClampedPercent(value)
		assert.Equal(t, once, ToClampedPercent(Number(once)))
	}
}

func TestFraction(t *testing.T) {
	v, ok := Formatted("53.54%").Fraction()
	assert.True(t, ok)
	assert.InDelta(t, 0.5354, v, 1e-9)

	v, ok = Number(59.09).Fraction()
	assert.True(t, ok)
	assert.InDelta(t, 0.5909, v, 1e-9)

	// Out of range clamps to the boundary.
	v, ok = Formatted("150%").Fraction()
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	// Missing and unparsable report not-ok so callers can omit the field.
	_, ok = Missing.Fraction()
	assert.False(t, ok)
	_, ok = Formatted("n/a").Fraction()
	assert.False(t, ok)
}

func TestToFixedDisplay(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		precision int
		expected  string
	}{
		{"two decimals", 3.14159, 2, "3.14"},
		{"boundary rounding", 2.005, 2, "2.00"},
		{"integer input", 7, 2, "7.00"},
		{"string number", "4.2", 1, "4.2"},
		{"nil input", nil, 2, Placeholder},
		{"nan input", math.NaN(), 2, Placeholder},
		{"infinity input", math.Inf(1), 2, Placeholder},
		{"garbage string", "soon", 2, Placeholder},
		{"missing percent", Missing, 2, Placeholder},
		{"formatted percent", Formatted("53.54%"), 2, "53.54"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToFixedDisplay(tt.value, tt.precision))
		})
	}
}

// The backend ships the same quantity as a string, a number or null,
// sometimes with surprises. Decoding is total.
func TestPercentLikeUnmarshal(t *testing.T) {
	var payload struct {
		Winrate  PercentLike `json:"winrate"`
		KP       PercentLike `json:"kp"`
		DmgShare PercentLike `json:"dmgShare"`
		Absent   PercentLike `json:"absent"`
	}

	raw := `{"winrate":"53.54%","kp":42.27,"dmgShare":null,"oddball":{"x":1}}`
	assert.NoError(t, json.Unmarshal([]byte(raw), &payload))

	assert.InDelta(t, 53.54, ToClampedPercent(payload.Winrate), 1e-9)
	assert.InDelta(t, 42.27, ToClampedPercent(payload.KP), 1e-9)
	assert.True(t, payload.DmgShare.IsMissing())
	assert.True(t, payload.Absent.IsMissing())

	// An unexpected JSON shape decodes as missing instead of failing.
	var odd PercentLike
	assert.NoError(t, json.Unmarshal([]byte(`{"x":1}`), &odd))
	assert.True(t, odd.IsMissing())
}
