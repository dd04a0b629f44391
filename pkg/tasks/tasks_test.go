package tasks

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfarm-io/console/pkg/models"
)

func TestInMemoryStore(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, models.TaskPending, items[0].Status)

	require.NoError(t, store.UpdateStatus(ctx, 101, models.TaskInProgress))

	items, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, items[0].Status)
}

func TestInMemoryStoreRejectsBadInput(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.UpdateStatus(ctx, 101, models.TaskStatus("Paused")), ErrInvalidStatus)
	assert.ErrorIs(t, store.UpdateStatus(ctx, 999, models.TaskDone), ErrUnknownTask)
}

func TestListReturnsACopy(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	items, err := store.List(ctx)
	require.NoError(t, err)

	items[0].Status = models.TaskDone

	fresh, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, fresh[0].Status)
}

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3, "fresh database must be seeded")

	require.NoError(t, store.UpdateStatus(ctx, 102, models.TaskDone))
	assert.ErrorIs(t, store.UpdateStatus(ctx, 999, models.TaskDone), ErrUnknownTask)
	assert.ErrorIs(t, store.UpdateStatus(ctx, 102, models.TaskStatus("Bogus")), ErrInvalidStatus)

	items, err = store.List(ctx)
	require.NoError(t, err)

	for _, item := range items {
		if item.ID == 102 {
			assert.Equal(t, models.TaskDone, item.Status)
		}
	}

	// Reopening keeps the persisted status rather than reseeding.
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	items, err = reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for _, item := range items {
		if item.ID == 102 {
			assert.Equal(t, models.TaskDone, item.Status)
		}
	}
}
