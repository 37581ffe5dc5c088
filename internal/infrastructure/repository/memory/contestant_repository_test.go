package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/contestants/internal/domain/contestant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContestantRepository_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewContestantRepository()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	saved, err := repo.Create(ctx, contestant.Contestant{ID: "c-1", Name: "Alice", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	_, err = repo.Create(ctx, saved)
	require.Error(t, err, "duplicate identity must be rejected")

	got, exists, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, saved, got)

	affected, err := repo.Delete(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	_, exists, err = repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestContestantRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := NewContestantRepository(
		contestant.Contestant{ID: "a", Name: "A", CreatedAt: base},
		contestant.Contestant{ID: "b", Name: "B", CreatedAt: base.Add(time.Minute)},
	)
	_, err := repo.Create(ctx, contestant.Contestant{ID: "c", Name: "C", CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].ID, "same timestamp falls back to insertion order")
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "a", items[2].ID)
}

func TestContestantRepository_ListEmpty(t *testing.T) {
	items, err := NewContestantRepository().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestContestantRepository_UpdateKeepsCountersAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := NewContestantRepository(contestant.Contestant{ID: "c-1", Name: "Alice", Wins: 4, Losses: 2, CreatedAt: created, UpdatedAt: created})

	updatedAt := created.Add(time.Hour)
	got, exists, err := repo.Update(ctx, contestant.Contestant{
		ID:        "c-1",
		Name:      "Alice B.",
		Wins:      99,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	})
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Alice B.", got.Name)
	assert.Equal(t, int64(4), got.Wins)
	assert.Equal(t, int64(2), got.Losses)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.UpdatedAt.Equal(updatedAt))

	_, exists, err = repo.Update(ctx, contestant.Contestant{ID: "missing", Name: "X"})
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestContestantRepository_IncrementIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := NewContestantRepository(contestant.Contestant{ID: "c-1", Name: "Alice"})

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _, _ = repo.Increment(ctx, "c-1", contestant.CounterWins)
		}()
		go func() {
			defer wg.Done()
			_, _, _ = repo.Increment(ctx, "c-1", contestant.CounterLosses)
		}()
	}
	wg.Wait()

	got, exists, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, int64(workers), got.Wins)
	assert.Equal(t, int64(workers), got.Losses)
}

func TestContestantRepository_IncrementMissingAndInvalid(t *testing.T) {
	ctx := context.Background()
	repo := NewContestantRepository(contestant.Contestant{ID: "c-1", Name: "Alice"})

	_, exists, err := repo.Increment(ctx, "missing", contestant.CounterWins)
	require.NoError(t, err)
	assert.False(t, exists)

	_, _, err = repo.Increment(ctx, "c-1", contestant.Counter("draws"))
	assert.Error(t, err)
}

func TestContestantRepository_IncrementTouchesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	bumped := created.Add(time.Hour)
	repo := NewContestantRepository(contestant.Contestant{ID: "c-1", Name: "Alice", CreatedAt: created, UpdatedAt: created})
	repo.now = func() time.Time { return bumped }

	got, exists, err := repo.Increment(ctx, "c-1", contestant.CounterWins)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, int64(1), got.Wins)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.UpdatedAt.Equal(bumped))
}
