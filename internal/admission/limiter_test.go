package admission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestLimiter(limit int, window time.Duration) (*Limiter, *time.Time) {
	l := New(limit, window)
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiter_FixedWindow(t *testing.T) {
	l, _ := newTestLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		require.True(t, l.Admit("1.2.3.4"), "request %d should be admitted", i+1)
	}
	require.False(t, l.Admit("1.2.3.4"), "request over the limit should be rejected")

	// A different client has its own window.
	require.True(t, l.Admit("5.6.7.8"))
}

func TestLimiter_WindowReset(t *testing.T) {
	l, now := newTestLimiter(2, time.Minute)

	require.True(t, l.Admit("1.2.3.4"))
	require.True(t, l.Admit("1.2.3.4"))
	require.False(t, l.Admit("1.2.3.4"))

	// The counter resets entirely once the window elapses, it does not slide.
	*now = now.Add(time.Minute)
	require.True(t, l.Admit("1.2.3.4"))
	require.True(t, l.Admit("1.2.3.4"))
	require.False(t, l.Admit("1.2.3.4"))
}

func TestLimiter_FallbackBucket(t *testing.T) {
	l, _ := newTestLimiter(2, time.Minute)

	// Requests without a client identity share one bucket.
	require.True(t, l.Admit(""))
	require.True(t, l.Admit(FallbackKey))
	require.False(t, l.Admit(""))
}

func TestLimiter_Disabled(t *testing.T) {
	l, _ := newTestLimiter(0, time.Minute)

	for i := 0; i < 100; i++ {
		require.True(t, l.Admit("1.2.3.4"))
	}
}

func TestLimiter_Prune(t *testing.T) {
	l, now := newTestLimiter(2, time.Minute)

	require.True(t, l.Admit("a"))
	require.True(t, l.Admit("b"))
	require.Equal(t, 0, l.Prune(), "live buckets must not be pruned")

	*now = now.Add(2 * time.Minute)
	require.Equal(t, 2, l.Prune())

	// Pruning must not change admission results.
	require.True(t, l.Admit("a"))
	require.True(t, l.Admit("a"))
	require.False(t, l.Admit("a"))
}

func TestLimiter_Accessors(t *testing.T) {
	l := New(5, 30*time.Second)
	require.Equal(t, 5, l.Limit())
	require.Equal(t, 30*time.Second, l.Window())
}
