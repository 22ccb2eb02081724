package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gamedex/internal/domain/entity"
	"gamedex/internal/domain/repository"
	"gamedex/pkg/errors"
	"gamedex/pkg/logger"
)

// DiscoverUseCase builds the personalized discovery content: one random batch
// per favorite genre, joined all-or-nothing.
type DiscoverUseCase struct {
	sampler  GameSampler
	userRepo repository.UserRepository

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewDiscoverUseCase(sampler GameSampler, userRepo repository.UserRepository) *DiscoverUseCase {
	return &DiscoverUseCase{
		sampler:  sampler,
		userRepo: userRepo,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenreRow is one recommendation row keyed by the genre that produced it.
type GenreRow struct {
	GenreID int64         `json:"genre_id"`
	Games   []entity.Game `json:"games"`
}

// Recommended fetches a batch per genre in parallel. If any fetch fails the
// whole result is discarded and the caller shows an empty state; there is no
// partial-result fallback.
func (uc *DiscoverUseCase) Recommended(ctx context.Context, genreIDs []int64, perGenre int) ([]GenreRow, error) {
	if len(genreIDs) == 0 {
		return []GenreRow{}, nil
	}
	if perGenre <= 0 {
		perGenre = 10
	}

	rows := make([]GenreRow, len(genreIDs))
	g, ctx := errgroup.WithContext(ctx)

	for i, genreID := range genreIDs {
		i, genreID := i, genreID
		g.Go(func() error {
			games, err := uc.sampler.RandomGamesByGenre(ctx, genreID, perGenre)
			if err != nil {
				return err
			}
			rows[i] = GenreRow{GenreID: genreID, Games: games}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Warn("Recommendation batch discarded: %v", err)
		return []GenreRow{}, nil
	}

	return rows, nil
}

// RecommendedForUser resolves the user's favorite genres first.
func (uc *DiscoverUseCase) RecommendedForUser(ctx context.Context, userID string, perGenre int) ([]GenreRow, error) {
	if userID == "" {
		return nil, errors.Unauthorized("No user logged in", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return uc.Recommended(ctx, user.FavoriteGenres, perGenre)
}

func (uc *DiscoverUseCase) RandomGames(ctx context.Context, limit int) ([]entity.Game, error) {
	return uc.sampler.RandomGames(ctx, limit)
}

// SurprisePick selects one game from the supplied lists, treating them as a
// single pool. Returns nil when every list is empty.
func (uc *DiscoverUseCase) SurprisePick(lists ...[]entity.Game) *entity.Game {
	total := 0
	for _, list := range lists {
		total += len(list)
	}
	if total == 0 {
		return nil
	}

	uc.rngMu.Lock()
	n := uc.rng.Intn(total)
	uc.rngMu.Unlock()

	for _, list := range lists {
		if n < len(list) {
			game := list[n]
			return &game
		}
		n -= len(list)
	}

	return nil
}
