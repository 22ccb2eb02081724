package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gamedex/pkg/errors"
)

const (
	oauthURL = "https://discord.com/api/oauth2/authorize"
	tokenURL = "https://discord.com/api/oauth2/token"
	apiURL   = "https://discord.com/api/v10"

	// Scopes requested for the sign-in flow.
	scopes = "identify email"
)

// User is the subset of the provider's "current user" resource this service
// reads.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// OAuthClient brokers the three-step Discord flow: authorize redirect, code
// exchange, user fetch. Each step is one call with no retry; errors surface
// to the caller as-is.
type OAuthClient struct {
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	apiURL       string
	httpClient   *http.Client
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	// TokenURL and APIURL override the provider endpoints in tests.
	TokenURL   string
	APIURL     string
	HTTPClient *http.Client
}

func NewOAuthClient(cfg OAuthConfig) *OAuthClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	c := &OAuthClient{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		tokenURL:     cfg.TokenURL,
		apiURL:       cfg.APIURL,
		httpClient:   httpClient,
	}
	if c.tokenURL == "" {
		c.tokenURL = tokenURL
	}
	if c.apiURL == "" {
		c.apiURL = apiURL
	}

	return c
}

// AuthorizeURL is where the browser gets redirected to start the flow.
func (c *OAuthClient) AuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", scopes)
	params.Set("state", state)

	return oauthURL + "?" + params.Encode()
}

// ExchangeCode trades an authorization code for an access token.
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Internal("Failed to build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Internal("Token exchange failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Internal("Failed to read token response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Upstream(fmt.Sprintf("Token exchange returned %d", resp.StatusCode), resp.StatusCode, nil)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return "", errors.Internal("Failed to parse token response", err)
	}
	if token.AccessToken == "" {
		return "", errors.Internal("Token response missing access_token", nil)
	}

	return token.AccessToken, nil
}

// CurrentUser fetches the provider's "current user" resource.
func (c *OAuthClient) CurrentUser(ctx context.Context, accessToken string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/users/@me", nil)
	if err != nil {
		return nil, errors.Internal("Failed to build user request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Internal("User fetch failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Upstream(fmt.Sprintf("User fetch returned %d", resp.StatusCode), resp.StatusCode, nil)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Internal("Failed to parse user response", err)
	}

	return &user, nil
}

// AvatarURL builds the CDN URL for a user's avatar, or "" when unset.
func AvatarURL(u *User) string {
	if u == nil || u.Avatar == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", u.ID, u.Avatar)
}
