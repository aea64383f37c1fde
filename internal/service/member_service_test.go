package service

import (
	"context"
	"testing"

	"tripplanner-api/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	member, err := f.members.SignUp(ctx, SignUpInput{Email: "carol@example.com", Nickname: "carol", Password: "trip2025!"})
	require.NoError(t, err)
	assert.NotEqual(t, "trip2025!", member.Password)

	_, err = f.members.SignUp(ctx, SignUpInput{Email: "carol@example.com", Nickname: "carol2", Password: "trip2025!"})
	assert.True(t, apperr.Is(err, apperr.DuplicateEmail))

	_, _, err = f.members.Login(ctx, "carol@example.com", "wrong-pass1!")
	assert.True(t, apperr.Is(err, apperr.InvalidPassword))

	_, _, err = f.members.Login(ctx, "nobody@example.com", "trip2025!")
	assert.True(t, apperr.Is(err, apperr.MemberNotFound))

	got, pair, err := f.members.Login(ctx, "carol@example.com", "trip2025!")
	require.NoError(t, err)
	assert.Equal(t, member.ID, got.ID)
	assert.NotEmpty(t, pair.AccessToken)

	rotated, err := f.members.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	require.NoError(t, f.members.Logout(ctx, rotated.RefreshToken))
	_, err = f.members.Refresh(ctx, rotated.RefreshToken)
	assert.True(t, apperr.Is(err, apperr.InvalidToken))
}

func TestRefreshWithoutToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.members.Refresh(context.Background(), "")
	assert.True(t, apperr.Is(err, apperr.InvalidToken))
}

func TestLogoutAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.members.SignUp(ctx, SignUpInput{Email: "dave@example.com", Nickname: "dave", Password: "trip2025!"})
	require.NoError(t, err)

	var tokens []string
	var memberID int64
	for i := 0; i < 2; i++ {
		m, pair, err := f.members.Login(ctx, "dave@example.com", "trip2025!")
		require.NoError(t, err)
		memberID = m.ID
		tokens = append(tokens, pair.RefreshToken)
	}

	n, err := f.members.LogoutAll(ctx, memberID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, token := range tokens {
		_, err := f.members.Refresh(ctx, token)
		assert.True(t, apperr.Is(err, apperr.InvalidToken))
	}
}

func TestGetMember(t *testing.T) {
	f := newFixture(t)

	got, err := f.members.GetMember(context.Background(), f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	_, err = f.members.GetMember(context.Background(), 9999)
	assert.True(t, apperr.Is(err, apperr.MemberNotFound))
}
