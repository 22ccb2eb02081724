package entity

import (
	"time"
)

const (
	// HistoryLimit caps the history document; the oldest entries are dropped.
	HistoryLimit = 50

	// LibrarySchemaVersion is written on every save so a future format change
	// has something to dispatch on. Readers tolerate its absence.
	LibrarySchemaVersion = 1
)

// FavoritesList is one user's favorites document, overwritten wholesale on
// every mutation. Entries are full game snapshots, not references, and no two
// entries share a game ID.
type FavoritesList struct {
	Games         []Game    `json:"games" firestore:"games"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
	SchemaVersion int       `json:"schema_version" firestore:"schemaVersion"`
}

func (f *FavoritesList) Contains(gameID int64) bool {
	for _, g := range f.Games {
		if g.ID == gameID {
			return true
		}
	}
	return false
}

// HistoryEntry is a viewed game snapshot plus the time it was viewed.
type HistoryEntry struct {
	Game     Game      `json:"game" firestore:"game"`
	ViewedAt time.Time `json:"viewed_at" firestore:"viewedAt"`
}

// HistoryList is one user's view history document, most recent first.
type HistoryList struct {
	Entries       []HistoryEntry `json:"entries" firestore:"entries"`
	UpdatedAt     time.Time      `json:"updated_at" firestore:"updatedAt"`
	SchemaVersion int            `json:"schema_version" firestore:"schemaVersion"`
}
