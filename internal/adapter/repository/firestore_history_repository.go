package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"gamedex/internal/domain/entity"
	"gamedex/internal/domain/repository"
	"gamedex/pkg/errors"
)

type firestoreHistoryRepository struct {
	client *firestore.Client
}

func NewFirestoreHistoryRepository(client *firestore.Client) repository.HistoryRepository {
	return &firestoreHistoryRepository{client: client}
}

func (r *firestoreHistoryRepository) Get(ctx context.Context, userID string) (*entity.HistoryList, error) {
	doc, err := r.client.Collection("history").Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return &entity.HistoryList{Entries: []entity.HistoryEntry{}}, nil
		}
		return nil, errors.Internal("Failed to get history", err)
	}

	var list entity.HistoryList
	if err := doc.DataTo(&list); err != nil {
		return nil, errors.Internal("Failed to parse history data", err)
	}
	if list.Entries == nil {
		list.Entries = []entity.HistoryEntry{}
	}

	return &list, nil
}

func (r *firestoreHistoryRepository) Save(ctx context.Context, userID string, list *entity.HistoryList) error {
	list.UpdatedAt = time.Now()
	list.SchemaVersion = entity.LibrarySchemaVersion

	_, err := r.client.Collection("history").Doc(userID).Set(ctx, list)
	if err != nil {
		return errors.Internal("Failed to save history", err)
	}

	return nil
}
