package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingRetentionDays(t *testing.T) {
	deletedAt := time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, 30, RemainingRetentionDays(deletedAt, deletedAt, DefaultRetentionDays))
	assert.Equal(t, 30, RemainingRetentionDays(deletedAt, deletedAt.Add(23*time.Hour), DefaultRetentionDays))
	assert.Equal(t, 29, RemainingRetentionDays(deletedAt, deletedAt.Add(24*time.Hour), DefaultRetentionDays))
	assert.Equal(t, 0, RemainingRetentionDays(deletedAt, deletedAt.AddDate(0, 0, 30), DefaultRetentionDays))
	assert.Equal(t, -4, RemainingRetentionDays(deletedAt, deletedAt.AddDate(0, 0, 34), DefaultRetentionDays))
	assert.Equal(t, 7, RemainingRetentionDays(deletedAt, deletedAt.AddDate(0, 0, 3), 10))
}

func TestRemainingRetentionDays_DeletedAtAheadOfNow(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, 30, RemainingRetentionDays(now.Add(time.Second), now, DefaultRetentionDays))
	assert.Equal(t, 30, RemainingRetentionDays(now.Add(3*24*time.Hour), now, DefaultRetentionDays))
}

func TestRemainingRetentionDays_MonotonicallyDecreasing(t *testing.T) {
	deletedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := RemainingRetentionDays(deletedAt, deletedAt, DefaultRetentionDays)
	for h := 1; h <= 24*40; h += 7 {
		cur := RemainingRetentionDays(deletedAt, deletedAt.Add(time.Duration(h)*time.Hour), DefaultRetentionDays)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestRetentionThresholds(t *testing.T) {
	assert.False(t, IsRetentionUrgent(6))
	assert.True(t, IsRetentionUrgent(5))
	assert.False(t, IsPurgeEligible(1))
	assert.True(t, IsPurgeEligible(0))
	assert.True(t, IsPurgeEligible(-3))
}
