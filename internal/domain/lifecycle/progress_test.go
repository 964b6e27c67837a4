package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustProgress(t *testing.T) {
	tests := []struct {
		current, delta, want int
	}{
		{0, 5, 5},
		{95, 5, 100},
		{100, 5, 100},
		{5, -10, 0},
		{42, 5, 45},
		{43, 5, 50},
		{42, -5, 35},
	}
	for _, tc := range tests {
		got := AdjustProgress(tc.current, tc.delta)
		assert.Equalf(t, tc.want, got, "AdjustProgress(%d, %d)", tc.current, tc.delta)
		assert.Zero(t, got%ProgressStep)
	}
}

func TestValidateProgress(t *testing.T) {
	assert.NoError(t, ValidateProgress(0))
	assert.NoError(t, ValidateProgress(37))
	assert.NoError(t, ValidateProgress(100))
	assert.ErrorIs(t, ValidateProgress(-1), ErrProgressOutOfRange)
	assert.ErrorIs(t, ValidateProgress(101), ErrProgressOutOfRange)
}
