package usecase

import (
	"context"

	"gamedex/internal/domain/entity"
	"gamedex/internal/infrastructure/discord"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	CustomToken(ctx context.Context, uid string, claims map[string]interface{}) (string, error)
	UpdateDisplayName(ctx context.Context, uid, displayName string) error
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, error)
}

type DiscordOAuthClient interface {
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	CurrentUser(ctx context.Context, accessToken string) (*discord.User, error)
}

type OAuthStateSigner interface {
	Sign() (string, error)
	Verify(state string) error
}

// GameSampler is the slice of the catalog client the discovery features use.
type GameSampler interface {
	RandomGames(ctx context.Context, limit int) ([]entity.Game, error)
	RandomGamesByGenre(ctx context.Context, genreID int64, limit int) ([]entity.Game, error)
}

// FeedCatalog is what the live feed re-fetches on each tick.
type FeedCatalog interface {
	PopularGames(ctx context.Context, limit int) ([]entity.Game, error)
	RecentlyReleased(ctx context.Context, limit int) ([]entity.Game, error)
}
