package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamedex/internal/infrastructure/igdb"
)

func newProxyTest(t *testing.T, upstream http.HandlerFunc) *ProxyHandler {
	t.Helper()

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	client := igdb.NewClient(igdb.ClientConfig{
		BaseURL:     server.URL,
		ClientID:    "proxy-client",
		AccessToken: "proxy-token",
	})

	return &ProxyHandler{client: client}
}

func proxyContext(e *echo.Echo, resource, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/igdb/"+resource, strings.NewReader(body))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("resource")
	c.SetParamValues(resource)
	return c, rec
}

func TestProxyForwardsBodyAndCredentials(t *testing.T) {
	var gotBody string
	var gotHeaders http.Header
	upstreamCalls := 0

	h := newProxyTest(t, func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotHeaders = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id":1,"name":"Celeste"}]`))
	})

	e := echo.New()
	c, rec := proxyContext(e, "games", "fields name; limit 1;")

	require.NoError(t, h.Forward(c))
	assert.Equal(t, 1, upstreamCalls)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `[{"id":1,"name":"Celeste"}]`, rec.Body.String())
	assert.Equal(t, "fields name; limit 1;", gotBody)
	assert.Equal(t, "proxy-client", gotHeaders.Get("Client-ID"))
	assert.Equal(t, "Bearer proxy-token", gotHeaders.Get("Authorization"))
	assert.Equal(t, "text/plain", gotHeaders.Get("Content-Type"))
}

func TestProxyPassesUpstreamErrorsVerbatim(t *testing.T) {
	h := newProxyTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"syntax error"}`))
	})

	e := echo.New()
	c, rec := proxyContext(e, "games", "garbage")

	require.NoError(t, h.Forward(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `{"message":"syntax error"}`, rec.Body.String())
}

func TestProxyRejectsUnknownResource(t *testing.T) {
	upstreamCalls := 0
	h := newProxyTest(t, func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
	})

	e := echo.New()
	c, rec := proxyContext(e, "users", "fields *;")

	require.NoError(t, h.Forward(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, upstreamCalls)
}
