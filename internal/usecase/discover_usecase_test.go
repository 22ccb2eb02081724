package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamedex/internal/domain/entity"
	"gamedex/pkg/errors"
)

type fakeSampler struct {
	failGenre int64
	calls     []int64
}

func (s *fakeSampler) RandomGames(ctx context.Context, limit int) ([]entity.Game, error) {
	games := make([]entity.Game, limit)
	for i := range games {
		games[i] = entity.Game{ID: int64(i + 1)}
	}
	return games, nil
}

func (s *fakeSampler) RandomGamesByGenre(ctx context.Context, genreID int64, limit int) ([]entity.Game, error) {
	s.calls = append(s.calls, genreID)
	if genreID == s.failGenre {
		return nil, errors.Upstream("Catalog service returned Internal Server Error", 500, nil)
	}
	games := make([]entity.Game, limit)
	for i := range games {
		games[i] = entity.Game{ID: genreID*100 + int64(i), Name: fmt.Sprintf("g%d-%d", genreID, i)}
	}
	return games, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	return nil
}

func TestRecommendedOneRowPerGenre(t *testing.T) {
	sampler := &fakeSampler{}
	uc := NewDiscoverUseCase(sampler, newFakeUserRepo())

	rows, err := uc.Recommended(context.Background(), []int64{4, 12, 31}, 5)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(4), rows[0].GenreID)
	assert.Equal(t, int64(12), rows[1].GenreID)
	assert.Equal(t, int64(31), rows[2].GenreID)
	for _, row := range rows {
		assert.Len(t, row.Games, 5)
	}
}

func TestRecommendedAllOrNothing(t *testing.T) {
	sampler := &fakeSampler{failGenre: 12}
	uc := NewDiscoverUseCase(sampler, newFakeUserRepo())

	rows, err := uc.Recommended(context.Background(), []int64{4, 12, 31}, 5)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecommendedEmptyGenres(t *testing.T) {
	sampler := &fakeSampler{}
	uc := NewDiscoverUseCase(sampler, newFakeUserRepo())

	rows, err := uc.Recommended(context.Background(), nil, 5)

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, sampler.calls)
}

func TestRecommendedForUserResolvesGenres(t *testing.T) {
	sampler := &fakeSampler{}
	userRepo := newFakeUserRepo()
	userRepo.users["user-1"] = &entity.User{ID: "user-1", FavoriteGenres: []int64{8, 9}}
	uc := NewDiscoverUseCase(sampler, userRepo)

	rows, err := uc.RecommendedForUser(context.Background(), "user-1", 3)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.ElementsMatch(t, []int64{8, 9}, sampler.calls)
}

func TestRecommendedForUserRequiresUser(t *testing.T) {
	uc := NewDiscoverUseCase(&fakeSampler{}, newFakeUserRepo())

	_, err := uc.RecommendedForUser(context.Background(), "", 3)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestSurprisePickFromPool(t *testing.T) {
	uc := NewDiscoverUseCase(&fakeSampler{}, newFakeUserRepo())

	listA := []entity.Game{{ID: 1}, {ID: 2}}
	listB := []entity.Game{{ID: 3}}

	for i := 0; i < 50; i++ {
		pick := uc.SurprisePick(listA, listB)
		require.NotNil(t, pick)
		assert.Contains(t, []int64{1, 2, 3}, pick.ID)
	}
}

func TestSurprisePickEmptyPool(t *testing.T) {
	uc := NewDiscoverUseCase(&fakeSampler{}, newFakeUserRepo())

	assert.Nil(t, uc.SurprisePick())
	assert.Nil(t, uc.SurprisePick([]entity.Game{}, nil))
}
