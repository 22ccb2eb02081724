package igdb

import (
	"context"
	"fmt"
	"time"

	"gamedex/internal/domain/entity"
	"gamedex/pkg/errors"
)

const listFields = "name, summary, storyline, rating, category, " +
	"cover.image_id, " +
	"platforms.name, platforms.abbreviation, " +
	"genres.name, themes.name, " +
	"involved_companies.company.name, involved_companies.developer, " +
	"first_release_date, " +
	"total_rating, total_rating_count"

const detailFields = "name, summary, storyline, rating, category, " +
	"cover.image_id, screenshots.image_id, artworks.image_id, " +
	"platforms.name, platforms.abbreviation, " +
	"genres.name, themes.name, game_modes.name, " +
	"player_perspectives.name, " +
	"involved_companies.company.name, involved_companies.developer, involved_companies.publisher, " +
	"websites.url, websites.category, " +
	"videos.video_id, videos.name, " +
	"first_release_date, " +
	"total_rating, total_rating_count, aggregated_rating, aggregated_rating_count, " +
	"age_ratings.rating, age_ratings.category, " +
	"similar_games.name, similar_games.cover.image_id"

const searchFields = "name, summary, cover.image_id, rating, first_release_date, " +
	"platforms.name, genres.name, involved_companies.company.name, involved_companies.developer"

const randomFields = "name, summary, cover.image_id, rating, " +
	"platforms.name, genres.name, themes.name, " +
	"involved_companies.company.name, involved_companies.developer, " +
	"first_release_date"

// GamesOptions mirrors the generic list call: callers layer semantic filters
// on top via Where/Sort.
type GamesOptions struct {
	Where  string
	Sort   string
	Limit  int
	Offset int
}

func (c *Client) Games(ctx context.Context, opts GamesOptions) ([]entity.Game, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	sort := opts.Sort
	if sort == "" {
		sort = "rating desc"
	}

	query := Query{
		Fields: listFields,
		Where:  opts.Where,
		Sort:   sort,
		Limit:  limit,
		Offset: opts.Offset,
	}

	return c.games(ctx, query.Build())
}

func (c *Client) GameByID(ctx context.Context, gameID int64) (*entity.Game, error) {
	query := Query{
		Fields: detailFields,
		Where:  fmt.Sprintf("id = %d", gameID),
	}

	games, err := c.games(ctx, query.Build())
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, errors.NotFound("Game", nil)
	}

	return &games[0], nil
}

// SearchGames over-fetches 2x so results missing a cover or any descriptive
// signal can be filtered out before slicing to the requested count.
func (c *Client) SearchGames(ctx context.Context, term string, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 10
	}

	query := Query{
		Fields: searchFields,
		Limit:  limit * 2,
		Search: term,
	}

	games, err := c.games(ctx, query.Build())
	if err != nil {
		return nil, err
	}

	return sliceTo(filterDisplayable(games), limit), nil
}

// SimilarGames expands the similar_games references of one game, then applies
// the same displayability filter as search.
func (c *Client) SimilarGames(ctx context.Context, gameID int64, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 10
	}

	fields := "similar_games.id, similar_games.name, similar_games.summary, similar_games.cover.image_id, similar_games.rating, " +
		"similar_games.genres.name, similar_games.themes.name, " +
		"similar_games.involved_companies.company.name, similar_games.involved_companies.developer"

	query := Query{
		Fields: fields,
		Where:  fmt.Sprintf("id = %d", gameID),
		Limit:  1,
	}

	games, err := c.games(ctx, query.Build())
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return []entity.Game{}, nil
	}

	return sliceTo(filterDisplayable(games[0].SimilarGames), limit), nil
}

func (c *Client) PopularGames(ctx context.Context, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 20
	}

	games, err := c.Games(ctx, GamesOptions{
		Limit: limit * 2,
		Where: "rating != null & rating > 80 & summary != null & cover != null & involved_companies != null",
		Sort:  "rating desc",
	})
	if err != nil {
		return nil, err
	}

	return sliceTo(games, limit), nil
}

func (c *Client) RecentlyReleased(ctx context.Context, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 20
	}

	now := time.Now().Unix()
	sixMonthsAgo := now - 180*24*60*60

	games, err := c.Games(ctx, GamesOptions{
		Limit: limit * 2,
		Where: fmt.Sprintf("first_release_date > %d & first_release_date < %d & summary != null & cover != null & involved_companies != null", sixMonthsAgo, now),
		Sort:  "first_release_date desc",
	})
	if err != nil {
		return nil, err
	}

	return sliceTo(games, limit), nil
}

func (c *Client) ComingSoon(ctx context.Context, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 20
	}

	now := time.Now().Unix()
	oneYearFromNow := now + 365*24*60*60

	games, err := c.Games(ctx, GamesOptions{
		Limit: limit * 2,
		Where: fmt.Sprintf("first_release_date > %d & first_release_date < %d & summary != null & cover != null", now, oneYearFromNow),
		Sort:  "first_release_date asc",
	})
	if err != nil {
		return nil, err
	}

	return sliceTo(games, limit), nil
}

func (c *Client) GamesByGenre(ctx context.Context, genreID int64, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 20
	}

	games, err := c.Games(ctx, GamesOptions{
		Limit: limit * 2,
		Where: fmt.Sprintf("genres = [%d] & summary != null & cover != null & rating != null & involved_companies != null", genreID),
		Sort:  "rating desc",
	})
	if err != nil {
		return nil, err
	}

	return sliceTo(games, limit), nil
}

func (c *Client) GamesByPlatform(ctx context.Context, platformID int64, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 20
	}

	return c.Games(ctx, GamesOptions{
		Limit: limit,
		Where: fmt.Sprintf("platforms = [%d]", platformID),
		Sort:  "rating desc",
	})
}

// filterDisplayable keeps games that have a cover and at least a summary or a
// rating, the minimum a list card can render.
func filterDisplayable(games []entity.Game) []entity.Game {
	filtered := make([]entity.Game, 0, len(games))
	for _, g := range games {
		if g.Cover == nil || g.Cover.ImageID == "" {
			continue
		}
		if g.Summary == "" && g.Rating == 0 {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}

func sliceTo(games []entity.Game, limit int) []entity.Game {
	if len(games) > limit {
		return games[:limit]
	}
	return games
}
