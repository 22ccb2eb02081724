package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"gamedex/internal/domain/entity"
	"gamedex/internal/domain/repository"
	"gamedex/pkg/errors"
)

type firestoreFavoritesRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoritesRepository(client *firestore.Client) repository.FavoritesRepository {
	return &firestoreFavoritesRepository{client: client}
}

func (r *firestoreFavoritesRepository) Get(ctx context.Context, userID string) (*entity.FavoritesList, error) {
	doc, err := r.client.Collection("favorites").Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			// First write creates the document; an absent one is an empty list.
			return &entity.FavoritesList{Games: []entity.Game{}}, nil
		}
		return nil, errors.Internal("Failed to get favorites", err)
	}

	var list entity.FavoritesList
	if err := doc.DataTo(&list); err != nil {
		return nil, errors.Internal("Failed to parse favorites data", err)
	}
	if list.Games == nil {
		list.Games = []entity.Game{}
	}

	return &list, nil
}

func (r *firestoreFavoritesRepository) Save(ctx context.Context, userID string, list *entity.FavoritesList) error {
	list.UpdatedAt = time.Now()
	list.SchemaVersion = entity.LibrarySchemaVersion

	_, err := r.client.Collection("favorites").Doc(userID).Set(ctx, list)
	if err != nil {
		return errors.Internal("Failed to save favorites", err)
	}

	return nil
}
