package lifecycle

import (
	"errors"
	"math"
)

const (
	ProgressMin  = 0
	ProgressMax  = 100
	ProgressStep = 5
)

var ErrProgressOutOfRange = errors.New("progress must be between 0 and 100")

// AdjustProgress applies a coarse delta and snaps the result to a multiple of
// ProgressStep inside [0, 100].
func AdjustProgress(current, delta int) int {
	v := float64(current + delta)
	snapped := int(math.Round(v/ProgressStep)) * ProgressStep
	return clampProgress(snapped)
}

// ValidateProgress checks an exact write. Exact values are not snapped.
func ValidateProgress(v int) error {
	if v < ProgressMin || v > ProgressMax {
		return ErrProgressOutOfRange
	}
	return nil
}

func clampProgress(v int) int {
	if v < ProgressMin {
		return ProgressMin
	}
	if v > ProgressMax {
		return ProgressMax
	}
	return v
}
