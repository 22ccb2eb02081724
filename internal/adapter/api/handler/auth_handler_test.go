package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamedex/internal/adapter/repository"
	"gamedex/internal/domain/entity"
	"gamedex/internal/infrastructure/discord"
	"gamedex/internal/usecase"
	"gamedex/pkg/errors"
)

type stubFirebaseAuth struct{}

func (stubFirebaseAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return "uid-1", nil
}

func (stubFirebaseAuth) VerifyToken(ctx context.Context, token string) (string, error) {
	return "uid-1", nil
}

func (stubFirebaseAuth) CustomToken(ctx context.Context, uid string, claims map[string]interface{}) (string, error) {
	return "custom-token-for-" + uid, nil
}

func (stubFirebaseAuth) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	return nil
}

func (stubFirebaseAuth) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	return "id-token", nil
}

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (r *stubUserRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}

// discordCallbackFixture wires a real OAuth client against stub provider
// endpoints so the callback runs the full exchange.
func discordCallbackFixture(t *testing.T) (*AuthHandler, *discord.StateSigner, *int) {
	t.Helper()

	tokenCalls := 0
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"provider-token"}`))
	}))
	t.Cleanup(tokenServer.Close)

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"123456","username":"discorduser","email":"d@example.com","avatar":"abc"}`))
	}))
	t.Cleanup(apiServer.Close)

	oauthClient := discord.NewOAuthClient(discord.OAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost/api/auth/callback/discord",
		TokenURL:     tokenServer.URL,
		APIURL:       apiServer.URL,
	})

	signer := discord.NewStateSigner("test-secret")
	userRepo := &stubUserRepo{users: make(map[string]*entity.User)}
	prefs := repository.NewMemoryPreferenceStore()

	authUseCase := usecase.NewAuthUseCase(userRepo, stubFirebaseAuth{}, oauthClient, signer, prefs)

	return NewAuthHandler(authUseCase), signer, &tokenCalls
}

func TestDiscordCallbackMissingCode(t *testing.T) {
	h, _, tokenCalls := discordCallbackFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback/discord", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.DiscordCallback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No code provided", rec.Body.String())
	assert.Zero(t, *tokenCalls)
}

func TestDiscordCallbackSuccessPage(t *testing.T) {
	h, signer, tokenCalls := discordCallbackFixture(t)

	state, err := signer.Sign()
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback/discord?code=auth-code&state="+state, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.DiscordCallback(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, *tokenCalls)

	body := rec.Body.String()
	assert.Contains(t, body, "'discord-auth'")
	assert.Contains(t, body, `"custom-token-for-discord_123456"`)
	assert.Contains(t, body, `"id":"123456"`)
	assert.Contains(t, body, "window.close()")
}

func TestDiscordCallbackRejectsForgedState(t *testing.T) {
	h, _, tokenCalls := discordCallbackFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback/discord?code=auth-code&state=forged", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.DiscordCallback(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "'discord-auth-error'")
	assert.Zero(t, *tokenCalls)
}
