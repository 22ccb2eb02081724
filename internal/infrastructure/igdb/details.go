package igdb

import (
	"context"
	"encoding/json"
	"fmt"

	"gamedex/internal/domain/entity"
	"gamedex/pkg/errors"
)

func (c *Client) listFor(ctx context.Context, resource, query string, out interface{}) error {
	payload, err := c.do(ctx, resource, query)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

func (c *Client) Screenshots(ctx context.Context, gameID int64) ([]entity.Image, error) {
	var images []entity.Image
	query := fmt.Sprintf("fields image_id, url, width, height; where game = %d;", gameID)
	err := c.listFor(ctx, "screenshots", query, &images)
	return images, err
}

func (c *Client) Artworks(ctx context.Context, gameID int64) ([]entity.Image, error) {
	var images []entity.Image
	query := fmt.Sprintf("fields image_id, url, width, height; where game = %d;", gameID)
	err := c.listFor(ctx, "artworks", query, &images)
	return images, err
}

func (c *Client) GameVideos(ctx context.Context, gameID int64) ([]entity.Video, error) {
	var videos []entity.Video
	query := fmt.Sprintf("fields video_id, name; where game = %d;", gameID)
	err := c.listFor(ctx, "game_videos", query, &videos)
	return videos, err
}

func (c *Client) AgeRatings(ctx context.Context, gameID int64) ([]entity.AgeRating, error) {
	var ratings []entity.AgeRating
	query := fmt.Sprintf("fields category, rating, synopsis; where game = %d;", gameID)
	err := c.listFor(ctx, "age_ratings", query, &ratings)
	return ratings, err
}

func (c *Client) ReleaseDates(ctx context.Context, gameID int64) ([]entity.ReleaseDate, error) {
	var dates []entity.ReleaseDate
	query := fmt.Sprintf("fields date, human, platform.name, region, status; where game = %d; sort date asc;", gameID)
	err := c.listFor(ctx, "release_dates", query, &dates)
	return dates, err
}

func (c *Client) TimeToBeat(ctx context.Context, gameID int64) (*entity.TimeToBeat, error) {
	var results []entity.TimeToBeat
	query := fmt.Sprintf("fields hastly, normally, completely; where game = %d;", gameID)
	if err := c.listFor(ctx, "game_time_to_beat", query, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.NotFound("Time to beat", nil)
	}
	return &results[0], nil
}

func (c *Client) LanguageSupports(ctx context.Context, gameID int64) ([]entity.LanguageSupport, error) {
	var supports []entity.LanguageSupport
	query := fmt.Sprintf("fields language.name, language_support_type.name; where game = %d;", gameID)
	err := c.listFor(ctx, "language_supports", query, &supports)
	return supports, err
}

func (c *Client) GlobalSearch(ctx context.Context, term string) ([]entity.SearchResult, error) {
	var results []entity.SearchResult
	query := fmt.Sprintf("search %q; fields game.name, game.cover.image_id, name, alternative_name, published_at;", term)
	err := c.listFor(ctx, "search", query, &results)
	return results, err
}

func (c *Client) Cover(ctx context.Context, coverID int64) (*entity.Image, error) {
	var covers []entity.Image
	query := fmt.Sprintf("fields image_id, url, width, height; where id = %d;", coverID)
	if err := c.listFor(ctx, "covers", query, &covers); err != nil {
		return nil, err
	}
	if len(covers) == 0 {
		return nil, errors.NotFound("Cover", nil)
	}
	return &covers[0], nil
}
