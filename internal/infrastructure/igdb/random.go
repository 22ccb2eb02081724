package igdb

import (
	"context"
	"fmt"
	"math/rand"

	"gamedex/internal/domain/entity"
)

// RandomGames fetches a window at a pseudo-random offset into the catalog,
// over-fetches 3x, then samples. Best-effort variety, not uniform sampling:
// the window is still sorted by rating upstream.
func (c *Client) RandomGames(ctx context.Context, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 3
	}

	query := Query{
		Fields: randomFields,
		Limit:  limit * 3,
		Offset: c.randomOffset(1000),
		Where:  "rating != null & rating > 75 & summary != null & cover != null & involved_companies != null & total_rating_count > 10",
		Sort:   "rating desc",
	}

	games, err := c.games(ctx, query.Build())
	if err != nil {
		return nil, err
	}

	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return sampleGames(c.rng, games, limit), nil
}

func (c *Client) RandomGamesByGenre(ctx context.Context, genreID int64, limit int) ([]entity.Game, error) {
	if limit <= 0 {
		limit = 10
	}

	query := Query{
		Fields: randomFields,
		Limit:  limit * 2,
		Offset: c.randomOffset(200),
		Where:  fmt.Sprintf("genres = [%d] & rating != null & rating > 70 & summary != null & cover != null & involved_companies != null", genreID),
		Sort:   "rating desc",
	}

	games, err := c.games(ctx, query.Build())
	if err != nil {
		return nil, err
	}

	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return sampleGames(c.rng, games, limit), nil
}

// sampleGames returns min(len(games), k) games with distinct IDs, chosen by a
// Fisher-Yates shuffle truncated to k steps.
func sampleGames(rng *rand.Rand, games []entity.Game, k int) []entity.Game {
	seen := make(map[int64]bool, len(games))
	pool := make([]entity.Game, 0, len(games))
	for _, g := range games {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		pool = append(pool, g)
	}

	if k > len(pool) {
		k = len(pool)
	}

	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
