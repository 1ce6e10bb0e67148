package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`DaysBetween считает дни включительно`, func(t *testing.T) {
		from := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
		to := time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC)
		require.Equal(t, 5, DaysBetween(from, to))
		require.Equal(t, 1, DaysBetween(from, from))
		require.Equal(t, 0, DaysBetween(to, from))
	})

	t.Run(`DayString и PeriodString`, func(t *testing.T) {
		moment := time.Date(2025, 2, 3, 15, 4, 5, 0, time.UTC)
		require.Equal(t, "2025-02-03", DayString(moment))
		require.Equal(t, "2025-02", PeriodString(moment))
	})

	t.Run(`IsContextDone`, func(t *testing.T) {
		require.Equal(t, true, IsContextDone(nil))
		ctx, cancel := context.WithCancel(context.Background())
		require.Equal(t, false, IsContextDone(ctx))
		cancel()
		require.Equal(t, true, IsContextDone(ctx))
	})
}
