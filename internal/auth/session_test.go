package auth

import (
	"context"
	"testing"
	"time"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/config"
	"tripplanner-api/internal/constants"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	mr       *miniredis.Miniredis
	sessions *Sessions
	jwt      *JWTManager
	store    *repository.MemoryStore
	member   *models.Member
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	jwtManager := NewJWTManager(config.JWTConfig{
		Secret:          "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})

	store := repository.NewMemoryStore()
	member := &models.Member{Email: "owner@example.com", Nickname: "owner", Password: "x"}
	require.NoError(t, store.Members().Create(context.Background(), member))

	return &fixture{
		mr:       mr,
		sessions: NewSessions(jwtManager, NewTokenStore(rdb), store.Members(), zap.NewNop()),
		jwt:      jwtManager,
		store:    store,
		member:   member,
	}
}

func TestIssueTokenPairStoresRefreshToken(t *testing.T) {
	f := newFixture(t)

	pair, err := f.sessions.IssueTokenPair(context.Background(), f.member.ID, f.member.Email)
	require.NoError(t, err)

	key := constants.RefreshTokenPrefix + pair.RefreshToken
	val, err := f.mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "1", val)
	assert.Equal(t, 7*24*time.Hour, f.mr.TTL(key))

	claims, err := f.sessions.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.True(t, f.sessions.Validate(pair.RefreshToken))
}

func TestRefreshIsSingleUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pair, err := f.sessions.IssueTokenPair(ctx, f.member.ID, f.member.Email)
	require.NoError(t, err)

	rotated, err := f.sessions.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)
	assert.False(t, f.mr.Exists(constants.RefreshTokenPrefix+pair.RefreshToken))
	assert.True(t, f.mr.Exists(constants.RefreshTokenPrefix+rotated.RefreshToken))

	_, err = f.sessions.Refresh(ctx, pair.RefreshToken)
	assert.True(t, apperr.Is(err, apperr.InvalidToken))

	_, err = f.sessions.Refresh(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	f := newFixture(t)

	pair, err := f.sessions.IssueTokenPair(context.Background(), f.member.ID, f.member.Email)
	require.NoError(t, err)

	_, err = f.sessions.Refresh(context.Background(), pair.AccessToken)
	assert.True(t, apperr.Is(err, apperr.InvalidToken))
}

func TestParseAccessTokenRejectsRefreshToken(t *testing.T) {
	f := newFixture(t)

	pair, err := f.sessions.IssueTokenPair(context.Background(), f.member.ID, f.member.Email)
	require.NoError(t, err)

	_, err = f.sessions.ParseAccessToken(pair.RefreshToken)
	assert.True(t, apperr.Is(err, apperr.InvalidToken))
}

func TestParseAccessTokenExpired(t *testing.T) {
	f := newFixture(t)
	expired := NewJWTManager(config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute})

	token, err := expired.GenerateAccessToken(f.member.ID, f.member.Email)
	require.NoError(t, err)

	_, err = f.sessions.ParseAccessToken(token)
	assert.True(t, apperr.Is(err, apperr.TokenExpired))
	assert.False(t, f.sessions.Validate(token))
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	f := newFixture(t)
	other := NewJWTManager(config.JWTConfig{Secret: "other-secret", AccessTokenTTL: time.Hour})

	token, err := other.GenerateAccessToken(f.member.ID, f.member.Email)
	require.NoError(t, err)

	_, err = f.sessions.ParseAccessToken(token)
	assert.True(t, apperr.Is(err, apperr.InvalidToken))
}

func TestRefreshForDeletedMember(t *testing.T) {
	f := newFixture(t)

	refresh, err := f.jwt.GenerateRefreshToken(999)
	require.NoError(t, err)
	require.NoError(t, f.sessions.store.Save(context.Background(), refresh, 999, time.Hour))

	_, err = f.sessions.Refresh(context.Background(), refresh)
	assert.True(t, apperr.Is(err, apperr.MemberNotFound))
}

func TestRevokeIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pair, err := f.sessions.IssueTokenPair(ctx, f.member.ID, f.member.Email)
	require.NoError(t, err)

	require.NoError(t, f.sessions.Revoke(ctx, pair.RefreshToken))
	require.NoError(t, f.sessions.Revoke(ctx, pair.RefreshToken))

	_, err = f.sessions.Refresh(ctx, pair.RefreshToken)
	assert.True(t, apperr.Is(err, apperr.InvalidToken))
}

func TestRevokeAllOnlyTouchesOneMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var mine []string
	for i := 0; i < 3; i++ {
		pair, err := f.sessions.IssueTokenPair(ctx, f.member.ID, f.member.Email)
		require.NoError(t, err)
		mine = append(mine, pair.RefreshToken)
	}
	other, err := f.sessions.IssueTokenPair(ctx, 77, "other@example.com")
	require.NoError(t, err)
	f.mr.Set("unrelated:key", "1")

	n, err := f.sessions.RevokeAll(ctx, f.member.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, token := range mine {
		assert.False(t, f.mr.Exists(constants.RefreshTokenPrefix+token))
	}
	assert.True(t, f.mr.Exists(constants.RefreshTokenPrefix+other.RefreshToken))
	assert.True(t, f.mr.Exists("unrelated:key"))
}

func TestGenerateRefreshTokenIsUnique(t *testing.T) {
	f := newFixture(t)

	a, err := f.jwt.GenerateRefreshToken(f.member.ID)
	require.NoError(t, err)
	b, err := f.jwt.GenerateRefreshToken(f.member.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
