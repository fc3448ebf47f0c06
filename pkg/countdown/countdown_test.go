package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUntilBreakdown(t *testing.T) {
	now := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	target := now.Add(49*time.Hour + 30*time.Minute + 15*time.Second)

	r := Until(target, now)
	require.Equal(t, Remaining{Days: 2, Hours: 1, Minutes: 30, Seconds: 15}, r)
}

func TestUntilClampsAtZero(t *testing.T) {
	now := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	target := now.Add(-time.Hour)

	r := Until(target, now)
	require.Equal(t, Remaining{Reached: true}, r)
}

func TestUntilExactMoment(t *testing.T) {
	now := time.Date(2025, 11, 9, 2, 0, 0, 0, time.UTC)
	require.True(t, Until(now, now).Reached)
}
