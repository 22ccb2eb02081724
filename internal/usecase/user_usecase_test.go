package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamedex/internal/domain/entity"
	"gamedex/pkg/errors"
)

func TestProfileImageStaysLocal(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["uid-1"] = &entity.User{ID: "uid-1"}
	prefs := newFakePreferenceStore()
	uc := NewUserUseCase(userRepo, &fakeFirebaseAuth{}, prefs)
	ctx := context.Background()

	require.NoError(t, uc.SetProfileImage(ctx, "uid-1", "data:image/png;base64,abc"))

	image, err := uc.GetProfileImage(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,abc", image)

	require.NoError(t, uc.DeleteProfileImage(ctx, "uid-1"))

	image, err = uc.GetProfileImage(ctx, "uid-1")
	require.NoError(t, err)
	assert.Empty(t, image)
}

func TestUpdateProfileRequiresUser(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), &fakeFirebaseAuth{}, newFakePreferenceStore())

	err := uc.UpdateProfile(context.Background(), "", UpdateProfileInput{DisplayName: "name"})
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestUpdateProfileEmptyNameIsNoop(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["uid-1"] = &entity.User{ID: "uid-1", Username: "before"}
	uc := NewUserUseCase(userRepo, &fakeFirebaseAuth{}, newFakePreferenceStore())

	require.NoError(t, uc.UpdateProfile(context.Background(), "uid-1", UpdateProfileInput{}))
	assert.Equal(t, "before", userRepo.users["uid-1"].Username)
}
