package igdb

import (
	"context"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamedex/internal/domain/entity"
	"gamedex/pkg/errors"
)

type capturedRequest struct {
	path    string
	body    string
	headers http.Header
}

func newTestClient(t *testing.T, status int, responseBody string, captured *capturedRequest) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if captured != nil {
			captured.path = r.URL.Path
			captured.body = string(body)
			captured.headers = r.Header.Clone()
		}
		w.WriteHeader(status)
		w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL:     server.URL,
		ClientID:    "test-client",
		AccessToken: "test-token",
		Rand:        rand.New(rand.NewSource(1)),
	})
}

func TestForwardInjectsCredentials(t *testing.T) {
	var captured capturedRequest
	client := newTestClient(t, http.StatusOK, `[]`, &captured)

	status, payload, err := client.Forward(context.Background(), "games", []byte("fields name;"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `[]`, string(payload))
	assert.Equal(t, "/games", captured.path)
	assert.Equal(t, "fields name;", captured.body)
	assert.Equal(t, "test-client", captured.headers.Get("Client-ID"))
	assert.Equal(t, "Bearer test-token", captured.headers.Get("Authorization"))
	assert.Equal(t, "text/plain", captured.headers.Get("Content-Type"))
}

func TestForwardReturnsUpstreamStatusVerbatim(t *testing.T) {
	client := newTestClient(t, http.StatusBadRequest, `{"message":"bad query"}`, nil)

	status, payload, err := client.Forward(context.Background(), "games", []byte("nonsense"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, `{"message":"bad query"}`, string(payload))
}

func TestPopularGamesQueryAndTruncation(t *testing.T) {
	var captured capturedRequest
	client := newTestClient(t, http.StatusOK, `[
		{"id":1,"name":"A","rating":95},
		{"id":2,"name":"B","rating":92},
		{"id":3,"name":"C","rating":90}
	]`, &captured)

	games, err := client.PopularGames(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, games, 2)
	assert.Equal(t, "A", games[0].Name)
	assert.Contains(t, captured.body, "rating > 80")
	assert.Contains(t, captured.body, "limit 4;")
	assert.Contains(t, captured.body, "sort rating desc;")
}

func TestSearchGamesFiltersUndisplayable(t *testing.T) {
	var captured capturedRequest
	client := newTestClient(t, http.StatusOK, `[
		{"id":1,"name":"No Cover","summary":"text"},
		{"id":2,"name":"Good","summary":"text","cover":{"id":9,"image_id":"abc"}},
		{"id":3,"name":"Bare","cover":{"id":10,"image_id":"def"}},
		{"id":4,"name":"Rated","rating":85,"cover":{"id":11,"image_id":"ghi"}}
	]`, &captured)

	games, err := client.SearchGames(context.Background(), "zelda", 5)

	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Good", games[0].Name)
	assert.Equal(t, "Rated", games[1].Name)
	assert.Contains(t, captured.body, `search "zelda";`)
	assert.Contains(t, captured.body, "limit 10;")
}

func TestGameByIDNotFound(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `[]`, nil)

	_, err := client.GameByID(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestGamesFailsOnUpstreamError(t *testing.T) {
	client := newTestClient(t, http.StatusInternalServerError, `boom`, nil)

	_, err := client.PopularGames(context.Background(), 5)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "UPSTREAM_ERROR"))
}

func TestSampleGamesDistinctAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	games := []entity.Game{
		{ID: 1}, {ID: 2}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 1}, {ID: 5},
	}

	sampled := sampleGames(rng, games, 3)

	require.Len(t, sampled, 3)
	seen := map[int64]bool{}
	for _, g := range sampled {
		assert.False(t, seen[g.ID], "duplicate id %d", g.ID)
		seen[g.ID] = true
	}
}

func TestSampleGamesShortPool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	games := []entity.Game{{ID: 1}, {ID: 1}, {ID: 2}}

	sampled := sampleGames(rng, games, 10)

	assert.Len(t, sampled, 2)
}

func TestRandomGamesQueryShape(t *testing.T) {
	var captured capturedRequest
	client := newTestClient(t, http.StatusOK, `[{"id":1},{"id":2},{"id":3}]`, &captured)

	games, err := client.RandomGames(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, games, 2)
	assert.Contains(t, captured.body, "rating > 75")
	assert.Contains(t, captured.body, "total_rating_count > 10")
	assert.Contains(t, captured.body, "limit 6;")
}

func TestRandomGamesByGenreQueryShape(t *testing.T) {
	var captured capturedRequest
	client := newTestClient(t, http.StatusOK, `[{"id":1}]`, &captured)

	games, err := client.RandomGamesByGenre(context.Background(), 12, 4)

	require.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Contains(t, captured.body, "genres = [12]")
	assert.Contains(t, captured.body, "rating > 70")
	assert.Contains(t, captured.body, "limit 8;")
}
