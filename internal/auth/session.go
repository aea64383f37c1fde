package auth

import (
	"context"
	"errors"

	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/constants"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/repository"

	"go.uber.org/zap"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MemberFinder resolves the member a refresh token belongs to.
type MemberFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Member, error)
}

// Sessions issues, rotates and revokes token pairs.
type Sessions struct {
	jwt     *JWTManager
	store   *TokenStore
	members MemberFinder
	logger  *zap.Logger
}

func NewSessions(jwt *JWTManager, store *TokenStore, members MemberFinder, logger *zap.Logger) *Sessions {
	return &Sessions{jwt: jwt, store: store, members: members, logger: logger}
}

func (s *Sessions) IssueTokenPair(ctx context.Context, memberID int64, email string) (*TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(memberID, email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(memberID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := s.store.Save(ctx, refresh, memberID, s.jwt.RefreshTTL()); err != nil {
		return nil, apperr.Internal(err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Sessions) Validate(token string) bool {
	return s.jwt.ValidateToken(token)
}

// ParseAccessToken accepts only access tokens; a refresh token is rejected
// even when its signature is valid.
func (s *Sessions) ParseAccessToken(token string) (*Claims, error) {
	claims, err := s.jwt.ParseToken(token)
	if errors.Is(err, ErrTokenExpired) {
		return nil, apperr.New(apperr.TokenExpired)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidToken, err)
	}
	if claims.Type != constants.TokenTypeAccess {
		return nil, apperr.Newf(apperr.InvalidToken, "not an access token")
	}
	if _, err := claims.MemberID(); err != nil {
		return nil, apperr.Wrap(apperr.InvalidToken, err)
	}
	return claims, nil
}

// Refresh rotates a refresh token. The old token is consumed by a single
// DEL; a caller that loses the race gets InvalidToken.
func (s *Sessions) Refresh(ctx context.Context, oldToken string) (*TokenPair, error) {
	claims, err := s.jwt.ParseToken(oldToken)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidToken, err)
	}
	if claims.Type != constants.TokenTypeRefresh {
		return nil, apperr.Newf(apperr.InvalidToken, "not a refresh token")
	}
	memberID, err := claims.MemberID()
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidToken, err)
	}

	deleted, err := s.store.Delete(ctx, oldToken)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !deleted {
		s.logger.Warn("refresh token reuse or unknown token", zap.Int64("member_id", memberID))
		return nil, apperr.Newf(apperr.InvalidToken, "refresh token is not active")
	}

	member, err := s.members.GetByID(ctx, memberID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.MemberNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return s.IssueTokenPair(ctx, member.ID, member.Email)
}

// Revoke drops one refresh token; unknown tokens are ignored.
func (s *Sessions) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if _, err := s.store.Delete(ctx, token); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *Sessions) RevokeAll(ctx context.Context, memberID int64) (int, error) {
	n, err := s.store.DeleteAllForMember(ctx, memberID)
	if err != nil {
		return n, apperr.Internal(err)
	}
	s.logger.Info("revoked refresh tokens", zap.Int64("member_id", memberID), zap.Int("count", n))
	return n, nil
}
