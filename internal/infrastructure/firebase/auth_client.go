package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
)

type FirebaseAuthClient struct {
	client     *auth.Client
	apiKey     string
	httpClient *http.Client
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client:     client,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

// CustomToken mints a custom session token for uid, carrying extra claims
// such as the identity provider and provider-side user id.
func (f *FirebaseAuthClient) CustomToken(ctx context.Context, uid string, claims map[string]interface{}) (string, error) {
	if len(claims) == 0 {
		return f.client.CustomToken(ctx, uid)
	}
	return f.client.CustomTokenWithClaims(ctx, uid, claims)
}

func (f *FirebaseAuthClient) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	params := (&auth.UserToUpdate{}).DisplayName(displayName)

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

type signInError struct {
	Code    string
	Message string
}

func (e *signInError) Error() string {
	return e.Message
}

// SignInCode extracts the identity provider's error code (EMAIL_EXISTS,
// USER_DISABLED, ...) so callers can map it to a user-facing message.
func SignInCode(err error) string {
	if sErr, ok := err.(*signInError); ok {
		return sErr.Code
	}
	return ""
}

// SignInWithEmailPassword exchanges credentials for an ID token via the
// identity provider's REST endpoint. The Admin SDK has no password sign-in,
// so this goes through identitytoolkit with the web API key.
func (f *FirebaseAuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	endpoint := fmt.Sprintf("https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword?key=%s", f.apiKey)

	payload, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
			return "", &signInError{Code: "UNKNOWN", Message: "Sign in failed"}
		}
		return "", &signInError{Code: errBody.Error.Message, Message: "Sign in failed: " + errBody.Error.Message}
	}

	var result struct {
		IDToken string `json:"idToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.IDToken, nil
}
