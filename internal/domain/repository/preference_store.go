package repository

import (
	"context"
	"time"
)

// PreferenceStore is the opaque key→string storage behind device preferences
// (theme, locale, search history, profile-image overrides). A zero ttl means
// the entry never expires.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
