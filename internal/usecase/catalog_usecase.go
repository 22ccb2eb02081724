package usecase

import (
	"context"

	"gamedex/internal/domain/entity"
	"gamedex/internal/infrastructure/igdb"
)

// CatalogUseCase fronts the catalog client for the HTTP layer. It adds no
// caching or retries; each call is one pass through to the catalog service.
type CatalogUseCase struct {
	client *igdb.Client
}

func NewCatalogUseCase(client *igdb.Client) *CatalogUseCase {
	return &CatalogUseCase{client: client}
}

func (uc *CatalogUseCase) Popular(ctx context.Context, limit int) ([]entity.Game, error) {
	return uc.client.PopularGames(ctx, limit)
}

func (uc *CatalogUseCase) RecentlyReleased(ctx context.Context, limit int) ([]entity.Game, error) {
	return uc.client.RecentlyReleased(ctx, limit)
}

func (uc *CatalogUseCase) ComingSoon(ctx context.Context, limit int) ([]entity.Game, error) {
	return uc.client.ComingSoon(ctx, limit)
}

func (uc *CatalogUseCase) ByGenre(ctx context.Context, genreID int64, limit int) ([]entity.Game, error) {
	return uc.client.GamesByGenre(ctx, genreID, limit)
}

func (uc *CatalogUseCase) ByPlatform(ctx context.Context, platformID int64, limit int) ([]entity.Game, error) {
	return uc.client.GamesByPlatform(ctx, platformID, limit)
}

func (uc *CatalogUseCase) Search(ctx context.Context, term string, limit int) ([]entity.Game, error) {
	return uc.client.SearchGames(ctx, term, limit)
}

func (uc *CatalogUseCase) GlobalSearch(ctx context.Context, term string) ([]entity.SearchResult, error) {
	return uc.client.GlobalSearch(ctx, term)
}

func (uc *CatalogUseCase) Game(ctx context.Context, gameID int64) (*entity.Game, error) {
	return uc.client.GameByID(ctx, gameID)
}

func (uc *CatalogUseCase) Similar(ctx context.Context, gameID int64, limit int) ([]entity.Game, error) {
	return uc.client.SimilarGames(ctx, gameID, limit)
}

func (uc *CatalogUseCase) Genres(ctx context.Context) ([]entity.NamedRef, error) {
	return uc.client.Genres(ctx)
}

func (uc *CatalogUseCase) Platforms(ctx context.Context) ([]entity.Platform, error) {
	return uc.client.Platforms(ctx)
}

func (uc *CatalogUseCase) PlatformFamilies(ctx context.Context) ([]entity.NamedRef, error) {
	return uc.client.PlatformFamilies(ctx)
}

func (uc *CatalogUseCase) Themes(ctx context.Context) ([]entity.NamedRef, error) {
	return uc.client.Themes(ctx)
}

func (uc *CatalogUseCase) GameModes(ctx context.Context) ([]entity.NamedRef, error) {
	return uc.client.GameModes(ctx)
}

func (uc *CatalogUseCase) PlayerPerspectives(ctx context.Context) ([]entity.NamedRef, error) {
	return uc.client.PlayerPerspectives(ctx)
}

func (uc *CatalogUseCase) Companies(ctx context.Context, limit int) ([]entity.Company, error) {
	return uc.client.Companies(ctx, limit)
}

func (uc *CatalogUseCase) Screenshots(ctx context.Context, gameID int64) ([]entity.Image, error) {
	return uc.client.Screenshots(ctx, gameID)
}

func (uc *CatalogUseCase) Artworks(ctx context.Context, gameID int64) ([]entity.Image, error) {
	return uc.client.Artworks(ctx, gameID)
}

func (uc *CatalogUseCase) Videos(ctx context.Context, gameID int64) ([]entity.Video, error) {
	return uc.client.GameVideos(ctx, gameID)
}

func (uc *CatalogUseCase) AgeRatings(ctx context.Context, gameID int64) ([]entity.AgeRating, error) {
	return uc.client.AgeRatings(ctx, gameID)
}

func (uc *CatalogUseCase) ReleaseDates(ctx context.Context, gameID int64) ([]entity.ReleaseDate, error) {
	return uc.client.ReleaseDates(ctx, gameID)
}

func (uc *CatalogUseCase) TimeToBeat(ctx context.Context, gameID int64) (*entity.TimeToBeat, error) {
	return uc.client.TimeToBeat(ctx, gameID)
}

func (uc *CatalogUseCase) LanguageSupports(ctx context.Context, gameID int64) ([]entity.LanguageSupport, error) {
	return uc.client.LanguageSupports(ctx, gameID)
}

func (uc *CatalogUseCase) Cover(ctx context.Context, coverID int64) (*entity.Image, error) {
	return uc.client.Cover(ctx, coverID)
}

func (uc *CatalogUseCase) Random(ctx context.Context, limit int) ([]entity.Game, error) {
	return uc.client.RandomGames(ctx, limit)
}
