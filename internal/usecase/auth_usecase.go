package usecase

import (
	"context"
	"time"

	fbauth "firebase.google.com/go/v4/auth"

	"gamedex/internal/domain/entity"
	"gamedex/internal/domain/repository"
	"gamedex/internal/infrastructure/discord"
	"gamedex/internal/infrastructure/firebase"
	"gamedex/pkg/errors"
	"gamedex/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	discordAuth  DiscordOAuthClient
	stateSigner  OAuthStateSigner
	prefs        repository.PreferenceStore
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	firebaseAuth FirebaseAuthClient,
	discordAuth DiscordOAuthClient,
	stateSigner OAuthStateSigner,
	prefs repository.PreferenceStore,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		discordAuth:  discordAuth,
		stateSigner:  stateSigner,
		prefs:        prefs,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates the account but returns no session token: the original
// flow signs the user out after registration so they log in explicitly.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Email already registered", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, errors.BadRequest("Email already registered", err)
		}
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:                      uid,
		Email:                   input.Email,
		Username:                input.Username,
		FavoriteGenres:          []int64{},
		HasCompletedPreferences: false,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	return user, nil
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, mapSignInError(err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.Me(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// mapSignInError converts provider error codes into the small fixed set of
// user-facing messages.
func mapSignInError(err error) error {
	switch firebase.SignInCode(err) {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return errors.Unauthorized("Invalid credentials", err)
	case "USER_DISABLED":
		return errors.Unauthorized("Account has been disabled", err)
	case "EMAIL_EXISTS":
		return errors.BadRequest("Email already registered", err)
	case "WEAK_PASSWORD":
		return errors.BadRequest("Password is too weak", err)
	default:
		return errors.Unauthorized("Invalid credentials", err)
	}
}

// Me combines the user document with the device-held profile image override.
// The local image always wins and is never written to the remote document.
func (uc *AuthUseCase) Me(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if image, ok, err := uc.prefs.Get(ctx, "profile_image_"+uid); err == nil && ok {
		user.PhotoURL = image
	}

	return user, nil
}

// DiscordAuthURL starts the OAuth flow: a signed state plus the provider's
// authorize URL for the redirect.
func (uc *AuthUseCase) DiscordAuthURL() (string, error) {
	state, err := uc.stateSigner.Sign()
	if err != nil {
		return "", err
	}
	return uc.discordAuth.AuthorizeURL(state), nil
}

type DiscordAuthResult struct {
	CustomToken string
	User        *discord.User
	AvatarURL   string
}

// DiscordCallback runs the linear code→token→user→mint sequence. The only
// branch is "document already exists → skip creation"; any failure aborts the
// whole flow.
func (uc *AuthUseCase) DiscordCallback(ctx context.Context, code, state string) (*DiscordAuthResult, error) {
	if err := uc.stateSigner.Verify(state); err != nil {
		return nil, err
	}

	accessToken, err := uc.discordAuth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	discordUser, err := uc.discordAuth.CurrentUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	uid := "discord_" + discordUser.ID

	if _, err := uc.userRepo.GetByID(ctx, uid); err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		now := time.Now()
		user := &entity.User{
			ID:                      uid,
			Email:                   discordUser.Email,
			Username:                discordUser.Username,
			Provider:                "discord",
			DiscordID:               discordUser.ID,
			FavoriteGenres:          []int64{},
			HasCompletedPreferences: false,
			CreatedAt:               now,
			UpdatedAt:               now,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Internal("Failed to create user record", err)
		}
	}

	customToken, err := uc.firebaseAuth.CustomToken(ctx, uid, map[string]interface{}{
		"provider":  "discord",
		"discordId": discordUser.ID,
	})
	if err != nil {
		return nil, errors.Internal("Failed to create authentication token", err)
	}

	return &DiscordAuthResult{
		CustomToken: customToken,
		User:        discordUser,
		AvatarURL:   discord.AvatarURL(discordUser),
	}, nil
}
