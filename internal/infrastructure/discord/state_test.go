package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSignVerifyRoundTrip(t *testing.T) {
	signer := NewStateSigner("secret")

	state, err := signer.Sign()
	require.NoError(t, err)
	assert.NoError(t, signer.Verify(state))
}

func TestStateVerifyRejectsForgery(t *testing.T) {
	signer := NewStateSigner("secret")

	assert.Error(t, signer.Verify("not-a-token"))
	assert.Error(t, signer.Verify(""))
}

func TestStateVerifyRejectsWrongSecret(t *testing.T) {
	state, err := NewStateSigner("secret-a").Sign()
	require.NoError(t, err)

	assert.Error(t, NewStateSigner("secret-b").Verify(state))
}

func TestAvatarURL(t *testing.T) {
	u := &User{ID: "123456", Avatar: "abcdef"}
	assert.Equal(t, "https://cdn.discordapp.com/avatars/123456/abcdef.png", AvatarURL(u))

	assert.Empty(t, AvatarURL(nil))
	assert.Empty(t, AvatarURL(&User{ID: "123456"}))
}
