package usecase

import (
	"context"

	"gamedex/internal/domain/entity"
	"gamedex/internal/domain/repository"
	"gamedex/pkg/errors"
)

type FavoritesUseCase struct {
	favoritesRepo repository.FavoritesRepository
}

func NewFavoritesUseCase(favoritesRepo repository.FavoritesRepository) *FavoritesUseCase {
	return &FavoritesUseCase{favoritesRepo: favoritesRepo}
}

func (uc *FavoritesUseCase) List(ctx context.Context, userID string) ([]entity.Game, error) {
	if userID == "" {
		return nil, errors.Unauthorized("No user logged in", nil)
	}

	list, err := uc.favoritesRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return list.Games, nil
}

// Toggle removes the game when it is already a favorite, otherwise appends
// its snapshot. The whole list is overwritten either way; filter-before-append
// keeps game IDs unique. Returns whether the game is a favorite afterwards.
func (uc *FavoritesUseCase) Toggle(ctx context.Context, userID string, game entity.Game) (bool, error) {
	if userID == "" {
		return false, errors.Unauthorized("No user logged in", nil)
	}

	list, err := uc.favoritesRepo.Get(ctx, userID)
	if err != nil {
		return false, err
	}

	added := !list.Contains(game.ID)
	if added {
		list.Games = append(list.Games, game)
	} else {
		kept := make([]entity.Game, 0, len(list.Games))
		for _, g := range list.Games {
			if g.ID != game.ID {
				kept = append(kept, g)
			}
		}
		list.Games = kept
	}

	if err := uc.favoritesRepo.Save(ctx, userID, list); err != nil {
		return false, err
	}

	return added, nil
}

func (uc *FavoritesUseCase) IsFavorite(ctx context.Context, userID string, gameID int64) (bool, error) {
	if userID == "" {
		return false, errors.Unauthorized("No user logged in", nil)
	}

	list, err := uc.favoritesRepo.Get(ctx, userID)
	if err != nil {
		return false, err
	}

	return list.Contains(gameID), nil
}
