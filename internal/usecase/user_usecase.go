package usecase

import (
	"context"

	"gamedex/internal/domain/repository"
	"gamedex/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	prefs        repository.PreferenceStore
}

func NewUserUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient, prefs repository.PreferenceStore) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		prefs:        prefs,
	}
}

type UpdateProfileInput struct {
	DisplayName string
}

// UpdateProfile touches the auth provider's display name and the user
// document. Photo URLs are deliberately not accepted here: profile images
// live only in device storage.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) error {
	if uid == "" {
		return errors.Unauthorized("No user logged in", nil)
	}

	if input.DisplayName == "" {
		return nil
	}

	if err := uc.firebaseAuth.UpdateDisplayName(ctx, uid, input.DisplayName); err != nil {
		return errors.Internal("Failed to update profile", err)
	}

	return uc.userRepo.Update(ctx, uid, map[string]interface{}{
		"username": input.DisplayName,
	})
}

// UpdatePreferences records the onboarding genre picks and marks onboarding
// as complete.
func (uc *UserUseCase) UpdatePreferences(ctx context.Context, uid string, favoriteGenres []int64) error {
	if uid == "" {
		return errors.Unauthorized("No user logged in", nil)
	}

	if favoriteGenres == nil {
		favoriteGenres = []int64{}
	}

	return uc.userRepo.Update(ctx, uid, map[string]interface{}{
		"favoriteGenres":          favoriteGenres,
		"hasCompletedPreferences": true,
	})
}

func profileImageKey(uid string) string {
	return "profile_image_" + uid
}

func (uc *UserUseCase) SetProfileImage(ctx context.Context, uid, image string) error {
	if uid == "" {
		return errors.Unauthorized("No user logged in", nil)
	}
	return uc.prefs.Set(ctx, profileImageKey(uid), image, 0)
}

func (uc *UserUseCase) GetProfileImage(ctx context.Context, uid string) (string, error) {
	if uid == "" {
		return "", errors.Unauthorized("No user logged in", nil)
	}

	image, _, err := uc.prefs.Get(ctx, profileImageKey(uid))
	return image, err
}

func (uc *UserUseCase) DeleteProfileImage(ctx context.Context, uid string) error {
	if uid == "" {
		return errors.Unauthorized("No user logged in", nil)
	}
	return uc.prefs.Delete(ctx, profileImageKey(uid))
}
