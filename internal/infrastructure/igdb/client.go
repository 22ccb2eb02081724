package igdb

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"gamedex/internal/domain/entity"
	"gamedex/pkg/errors"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultVocabTTL = 4 * time.Hour
)

// Client talks to the catalog service. One request per call, no retries;
// whatever the transport or the upstream returns is what the caller gets.
type Client struct {
	baseURL     string
	clientID    string
	accessToken string
	httpClient  *http.Client
	redis       *redis.Client
	vocabTTL    time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
}

type ClientConfig struct {
	BaseURL     string
	ClientID    string
	AccessToken string
	HTTPClient  *http.Client
	// Redis is optional; when set, small vocabulary lists (genres, platforms,
	// themes) are served read-through from it.
	Redis    *redis.Client
	VocabTTL time.Duration
	// Rand drives the random-offset and sampling endpoints. Defaults to a
	// time-seeded source.
	Rand *rand.Rand
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	vocabTTL := cfg.VocabTTL
	if vocabTTL <= 0 {
		vocabTTL = defaultVocabTTL
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		clientID:    cfg.ClientID,
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
		redis:       cfg.Redis,
		vocabTTL:    vocabTTL,
		rng:         rng,
	}
}

// Forward posts a raw query body to a catalog resource and returns the
// upstream status code and body verbatim. The proxy route is built on this.
func (c *Client) Forward(ctx context.Context, resource string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+resource, bytes.NewReader(body))
	if err != nil {
		return 0, nil, errors.Internal("Failed to build catalog request", err)
	}

	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Internal("Catalog request failed", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Internal("Failed to read catalog response", err)
	}

	return resp.StatusCode, payload, nil
}

// do issues a query and returns the response body, failing on non-2xx.
func (c *Client) do(ctx context.Context, resource, query string) ([]byte, error) {
	status, payload, err := c.Forward(ctx, resource, []byte(query))
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		return nil, errors.Upstream("Catalog service returned "+http.StatusText(status), status, nil)
	}

	return payload, nil
}

func (c *Client) games(ctx context.Context, query string) ([]entity.Game, error) {
	payload, err := c.do(ctx, "games", query)
	if err != nil {
		return nil, err
	}

	var games []entity.Game
	if err := json.Unmarshal(payload, &games); err != nil {
		return nil, errors.Internal("Failed to parse catalog response", err)
	}

	return games, nil
}

// randomOffset returns a pseudo-random offset in [0, n).
func (c *Client) randomOffset(n int) int {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.Intn(n)
}
