package lifecycle

import (
	"math"
	"time"
)

const (
	DefaultRetentionDays = 30
	UrgentRetentionDays  = 5
)

// RemainingRetentionDays returns window − floor(elapsed days since deletedAt).
// The result goes negative once the window has passed. A deletedAt ahead of
// now counts as no time elapsed.
func RemainingRetentionDays(deletedAt, now time.Time, window int) int {
	elapsed := math.Max(now.Sub(deletedAt).Hours()/24, 0)
	return window - int(math.Floor(elapsed))
}

// IsRetentionUrgent reports whether remaining days should be highlighted.
func IsRetentionUrgent(remaining int) bool { return remaining <= UrgentRetentionDays }

// IsPurgeEligible reports whether the retention window is exhausted. Nothing
// in the engine purges on its own; this only informs the operator.
func IsPurgeEligible(remaining int) bool { return remaining <= 0 }
