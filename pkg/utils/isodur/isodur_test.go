package isodur

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"PT5M30S", 5.5},
		{"PT1H", 60},
		{"PT45S", 0.75},
		{"PT2H30M", 150},
		{"P1DT2H", 26 * 60},
		{"P1W", 7 * 24 * 60},
		{"PT0S", 0},
		{"pt5m30s", 5.5}, // case-insensitive
		{"  PT10M  ", 10},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.InDelta(t, tc.want, Minutes(tc.in), 1e-9)
		})
	}
}

func TestMinutes_MalformedYieldsZero(t *testing.T) {
	cases := []string{
		"",
		"P",
		"PT",
		"garbage",
		"5m30s",
		"PT5X",
		"T5M",
		"PTM",
		"P-1D",
	}

	for _, in := range cases {
		t.Run("malformed "+in, func(t *testing.T) {
			require.Equal(t, 0.0, Minutes(in))
		})
	}
}

func TestMinutes_NeverNegative(t *testing.T) {
	// Any defined result is a non-negative real number.
	for _, in := range []string{"PT1S", "PT0.5S", "P0D", "PT0M0S", "nonsense"} {
		require.GreaterOrEqual(t, Minutes(in), 0.0)
	}
}
