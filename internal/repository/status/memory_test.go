package status

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/panic-button/internal/domain/alert"
)

// TestMemoryRepository_LocationRules verifies safe and panic transitions against the stored location.
func TestMemoryRepository_LocationRules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()

	got, err := repo.GetStatus(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, alert.StatusUnset, got.Status)
	require.Nil(t, got.Location)

	home := &alert.Location{Latitude: 12.34, Longitude: 56.78}
	require.NoError(t, repo.SetStatus(ctx, 1, alert.StatusSafe, home))

	got, err = repo.GetStatus(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, alert.StatusSafe, got.Status)
	require.Equal(t, home, got.Location)
	require.NotSame(t, home, got.Location)

	// Panic with a location keeps the last safe location.
	require.NoError(t, repo.SetStatus(ctx, 1, alert.StatusPanic, &alert.Location{Latitude: 1, Longitude: 2}))

	got, err = repo.GetStatus(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, alert.StatusPanic, got.Status)
	require.Equal(t, home, got.Location)

	// Safe without a location keeps it too.
	require.NoError(t, repo.SetStatus(ctx, 1, alert.StatusSafe, nil))

	got, err = repo.GetStatus(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, alert.StatusSafe, got.Status)
	require.Equal(t, home, got.Location)
}

// TestMemoryRepository_Concurrent exercises concurrent writers of different users.
func TestMemoryRepository_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	for userID := int64(1); userID <= 32; userID++ {
		wg.Go(func() {
			require.NoError(t, repo.SetStatus(ctx, userID, alert.StatusPanic, nil))
		})
	}

	wg.Wait()

	for userID := int64(1); userID <= 32; userID++ {
		got, err := repo.GetStatus(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, alert.StatusPanic, got.Status)
	}
}
