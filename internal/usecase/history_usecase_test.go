package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamedex/internal/domain/entity"
)

type fakeHistoryRepo struct {
	lists map[string]*entity.HistoryList
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{lists: make(map[string]*entity.HistoryList)}
}

func (r *fakeHistoryRepo) Get(ctx context.Context, userID string) (*entity.HistoryList, error) {
	if list, ok := r.lists[userID]; ok {
		copied := *list
		copied.Entries = append([]entity.HistoryEntry(nil), list.Entries...)
		return &copied, nil
	}
	return &entity.HistoryList{Entries: []entity.HistoryEntry{}}, nil
}

func (r *fakeHistoryRepo) Save(ctx context.Context, userID string, list *entity.HistoryList) error {
	r.lists[userID] = list
	return nil
}

func TestHistoryAddPrepends(t *testing.T) {
	uc := NewHistoryUseCase(newFakeHistoryRepo())
	ctx := context.Background()

	require.NoError(t, uc.Add(ctx, "user-1", entity.Game{ID: 1, Name: "First"}))
	require.NoError(t, uc.Add(ctx, "user-1", entity.Game{ID: 2, Name: "Second"}))

	entries, err := uc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].Game.ID)
	assert.Equal(t, int64(1), entries[1].Game.ID)
}

func TestHistoryAddMovesExistingToFront(t *testing.T) {
	uc := NewHistoryUseCase(newFakeHistoryRepo())
	ctx := context.Background()

	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, uc.Add(ctx, "user-1", entity.Game{ID: id}))
	}

	require.NoError(t, uc.Add(ctx, "user-1", entity.Game{ID: 1}))

	entries, err := uc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(1), entries[0].Game.ID)
	assert.Equal(t, int64(3), entries[1].Game.ID)
	assert.Equal(t, int64(2), entries[2].Game.ID)
}

func TestHistoryCapped(t *testing.T) {
	uc := NewHistoryUseCase(newFakeHistoryRepo())
	ctx := context.Background()

	for i := 0; i < entity.HistoryLimit+10; i++ {
		game := entity.Game{ID: int64(i + 1), Name: fmt.Sprintf("Game %d", i+1)}
		require.NoError(t, uc.Add(ctx, "user-1", game))
	}

	entries, err := uc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, entries, entity.HistoryLimit)
	// Newest first, oldest dropped.
	assert.Equal(t, int64(entity.HistoryLimit+10), entries[0].Game.ID)
	assert.Equal(t, int64(11), entries[entity.HistoryLimit-1].Game.ID)
}

func TestHistoryClear(t *testing.T) {
	repo := newFakeHistoryRepo()
	uc := NewHistoryUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Add(ctx, "user-1", entity.Game{ID: 1}))
	require.NoError(t, uc.Clear(ctx, "user-1"))

	entries, err := uc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
