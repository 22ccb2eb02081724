package igdb

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"gamedex/internal/domain/entity"
	"gamedex/pkg/logger"
)

const vocabCachePrefix = "igdb:vocab:"

// Vocabulary resources are tiny and near-static, so they go through a Redis
// read-through cache when one is configured. A cache failure is only logged;
// the catalog stays the source of truth.
func (c *Client) cachedList(ctx context.Context, key, resource, query string, out interface{}) error {
	cacheKey := vocabCachePrefix + key

	if c.redis != nil {
		cached, err := c.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(cached), out); err == nil {
				return nil
			}
			logger.Warn("Failed to unmarshal cached %s list, refetching", key)
		} else if err != goredis.Nil {
			logger.Warn("Failed to read %s list from cache: %v", key, err)
		}
	}

	payload, err := c.do(ctx, resource, query)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return err
	}

	if c.redis != nil {
		if err := c.redis.Set(ctx, cacheKey, payload, c.vocabTTL).Err(); err != nil {
			logger.Warn("Failed to cache %s list: %v", key, err)
		}
	}

	return nil
}

func (c *Client) Genres(ctx context.Context) ([]entity.NamedRef, error) {
	var genres []entity.NamedRef
	err := c.cachedList(ctx, "genres", "genres", "fields name, slug; limit 50; sort name asc;", &genres)
	return genres, err
}

func (c *Client) Platforms(ctx context.Context) ([]entity.Platform, error) {
	var platforms []entity.Platform
	query := "fields name, abbreviation, platform_logo.image_id, platform_family; " +
		"where category = (1,5,6); limit 100; sort name asc;"
	err := c.cachedList(ctx, "platforms", "platforms", query, &platforms)
	return platforms, err
}

func (c *Client) PlatformFamilies(ctx context.Context) ([]entity.NamedRef, error) {
	var families []entity.NamedRef
	err := c.cachedList(ctx, "platform_families", "platform_families", "fields name, slug; limit 50;", &families)
	return families, err
}

func (c *Client) Themes(ctx context.Context) ([]entity.NamedRef, error) {
	var themes []entity.NamedRef
	err := c.cachedList(ctx, "themes", "themes", "fields name, slug; limit 50; sort name asc;", &themes)
	return themes, err
}

func (c *Client) GameModes(ctx context.Context) ([]entity.NamedRef, error) {
	var modes []entity.NamedRef
	err := c.cachedList(ctx, "game_modes", "game_modes", "fields name, slug; limit 20;", &modes)
	return modes, err
}

func (c *Client) PlayerPerspectives(ctx context.Context) ([]entity.NamedRef, error) {
	var perspectives []entity.NamedRef
	err := c.cachedList(ctx, "player_perspectives", "player_perspectives", "fields name, slug; limit 20;", &perspectives)
	return perspectives, err
}

func (c *Client) Companies(ctx context.Context, limit int) ([]entity.Company, error) {
	if limit <= 0 {
		limit = 50
	}

	query := Query{
		Fields: "name, slug, description, country, logo.image_id, websites.url",
		Sort:   "name asc",
		Limit:  limit,
	}

	payload, err := c.do(ctx, "companies", query.Build())
	if err != nil {
		return nil, err
	}

	var companies []entity.Company
	if err := json.Unmarshal(payload, &companies); err != nil {
		return nil, err
	}

	return companies, nil
}
