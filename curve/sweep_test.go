package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholds(t *testing.T) {
	tests := []struct {
		name           string
		from, to, step float64
		wantLen        int
		wantFirst      float64
		wantLast       float64
	}{
		{name: "roc sweep", from: 0, to: 100, step: ROCStep, wantLen: 51, wantFirst: 0, wantLast: 100},
		{name: "pr sweep", from: 100, to: 0, step: -PRStep, wantLen: 101, wantFirst: 100, wantLast: 0},
		{name: "fractional step", from: 0, to: 1, step: 0.1, wantLen: 11, wantFirst: 0, wantLast: 1},
		{name: "uneven end", from: 0, to: 5, step: 2, wantLen: 3, wantFirst: 0, wantLast: 4},
		{name: "zero step", from: 7, to: 10, step: 0, wantLen: 1, wantFirst: 7, wantLast: 7},
		{name: "wrong direction", from: 0, to: 10, step: -1, wantLen: 1, wantFirst: 0, wantLast: 0},
		{name: "single", from: 3, to: 3, step: 1, wantLen: 1, wantFirst: 3, wantLast: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Thresholds(tt.from, tt.to, tt.step)
			require.Len(t, got, tt.wantLen)
			assert.InDelta(t, tt.wantFirst, got[0], 1e-9)
			assert.InDelta(t, tt.wantLast, got[len(got)-1], 1e-9)
		})
	}
}
