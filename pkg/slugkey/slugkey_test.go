package slugkey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		slug, err := New()
		require.NoError(t, err)
		require.Len(t, slug, Length)
		for _, r := range slug {
			require.True(t, r >= 'a' && r <= 'z', "slug %q contains %q", slug, r)
		}
		seen[slug] = true
	}
	// 50 draws from 26^5 should essentially never repeat.
	require.Greater(t, len(seen), 45)
}

func TestUniqueReturnsFreeSlug(t *testing.T) {
	probes := 0
	slug, err := Unique(context.Background(), func(_ context.Context, s string) (bool, error) {
		probes++
		return false, nil
	})
	require.NoError(t, err)
	require.Len(t, slug, Length)
	require.Equal(t, 1, probes)
}

func TestUniqueSkipsTakenSlugs(t *testing.T) {
	calls := 0
	slug, err := Unique(context.Background(), func(_ context.Context, s string) (bool, error) {
		calls++
		return calls < 3, nil
	})
	require.NoError(t, err)
	require.Len(t, slug, Length)
	require.Equal(t, 3, calls)
}

func TestUniqueFallsBackWhenExhausted(t *testing.T) {
	slug, err := Unique(context.Background(), func(_ context.Context, s string) (bool, error) {
		return true, nil
	})
	require.NoError(t, err)
	require.Len(t, slug, Length)
	require.Equal(t, byte('z'), slug[0])
}

func TestUniquePropagatesProbeError(t *testing.T) {
	boom := errors.New("db down")
	_, err := Unique(context.Background(), func(_ context.Context, s string) (bool, error) {
		return false, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestFallbackShape(t *testing.T) {
	slug := Fallback(time.Date(2025, 11, 9, 2, 0, 0, 0, time.UTC))
	require.Len(t, slug, Length)
	require.Equal(t, byte('z'), slug[0])
}
