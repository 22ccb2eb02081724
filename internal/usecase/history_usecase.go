package usecase

import (
	"context"
	"time"

	"gamedex/internal/domain/entity"
	"gamedex/internal/domain/repository"
	"gamedex/pkg/errors"
)

type HistoryUseCase struct {
	historyRepo repository.HistoryRepository
}

func NewHistoryUseCase(historyRepo repository.HistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{historyRepo: historyRepo}
}

func (uc *HistoryUseCase) List(ctx context.Context, userID string) ([]entity.HistoryEntry, error) {
	if userID == "" {
		return nil, errors.Unauthorized("No user logged in", nil)
	}

	list, err := uc.historyRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return list.Entries, nil
}

// Add prepends a viewed game: an existing entry for the same game is removed
// first so it moves to the front without duplication, then the list is
// truncated to the cap and overwritten.
func (uc *HistoryUseCase) Add(ctx context.Context, userID string, game entity.Game) error {
	if userID == "" {
		return errors.Unauthorized("No user logged in", nil)
	}

	list, err := uc.historyRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	kept := make([]entity.HistoryEntry, 0, len(list.Entries)+1)
	kept = append(kept, entity.HistoryEntry{Game: game, ViewedAt: time.Now()})
	for _, e := range list.Entries {
		if e.Game.ID != game.ID {
			kept = append(kept, e)
		}
	}

	if len(kept) > entity.HistoryLimit {
		kept = kept[:entity.HistoryLimit]
	}
	list.Entries = kept

	return uc.historyRepo.Save(ctx, userID, list)
}

// Clear overwrites the document with an empty list.
func (uc *HistoryUseCase) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.Unauthorized("No user logged in", nil)
	}

	return uc.historyRepo.Save(ctx, userID, &entity.HistoryList{Entries: []entity.HistoryEntry{}})
}
