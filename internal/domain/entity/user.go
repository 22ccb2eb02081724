package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`

	Provider  string `json:"provider,omitempty" firestore:"provider,omitempty"`
	DiscordID string `json:"discord_id,omitempty" firestore:"discordId,omitempty"`

	// PhotoURL is populated from the device preference store, never from
	// Firestore. Profile images stay on the device to keep documents small.
	PhotoURL string `json:"photo_url,omitempty" firestore:"-"`

	FavoriteGenres          []int64 `json:"favorite_genres" firestore:"favoriteGenres"`
	HasCompletedPreferences bool    `json:"has_completed_preferences" firestore:"hasCompletedPreferences"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
