package repository

import (
	"context"

	"gamedex/internal/domain/entity"
)

// FavoritesRepository stores one whole favorites document per user. Get
// returns an empty list when the document does not exist yet; Save overwrites
// it wholesale (last write wins).
type FavoritesRepository interface {
	Get(ctx context.Context, userID string) (*entity.FavoritesList, error)
	Save(ctx context.Context, userID string, list *entity.FavoritesList) error
}

// HistoryRepository has the same whole-document contract as
// FavoritesRepository.
type HistoryRepository interface {
	Get(ctx context.Context, userID string) (*entity.HistoryList, error)
	Save(ctx context.Context, userID string, list *entity.HistoryList) error
}
