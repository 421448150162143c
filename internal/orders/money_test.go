package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"already two decimals", 32.25, 32.25},
		{"rounds down below half cent", 10.004, 10.00},
		{"rounds up above half cent", 10.006, 10.01},
		{"exact half cent rounds up", 7.125, 7.13},
		{"carries into next dollar", 19.999, 20.00},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, roundCents(tc.in), 0.0001)
		})
	}
}
