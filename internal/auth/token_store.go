package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tripplanner-api/internal/constants"

	"github.com/redis/go-redis/v9"
)

// TokenStore persists live refresh tokens as refresh_token:<token> -> member id.
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

func tokenKey(token string) string {
	return constants.RefreshTokenPrefix + token
}

func (s *TokenStore) Save(ctx context.Context, token string, memberID int64, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, tokenKey(token), strconv.FormatInt(memberID, 10), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// MemberID returns the stored owner, with ok=false when the token is unknown.
func (s *TokenStore) MemberID(ctx context.Context, token string) (int64, bool, error) {
	val, err := s.rdb.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read refresh token: %w", err)
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt refresh token value %q: %w", val, err)
	}
	return id, true, nil
}

// Delete removes one token and reports whether it was present. Only one of
// several concurrent callers sees true.
func (s *TokenStore) Delete(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Del(ctx, tokenKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return n > 0, nil
}

// DeleteAllForMember scans every refresh token and drops the member's. It is
// linear in the number of live tokens.
func (s *TokenStore) DeleteAllForMember(ctx context.Context, memberID int64) (int, error) {
	want := strconv.FormatInt(memberID, 10)
	deleted := 0

	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, constants.RefreshTokenPrefix+"*", constants.RefreshScanCount).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to scan refresh tokens: %w", err)
		}

		for _, key := range keys {
			val, err := s.rdb.Get(ctx, key).Result()
			if errors.Is(err, redis.Nil) {
				continue
			}
			if err != nil {
				return deleted, fmt.Errorf("failed to read refresh token: %w", err)
			}
			if val != want {
				continue
			}
			n, err := s.rdb.Del(ctx, key).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to delete refresh token: %w", err)
			}
			deleted += int(n)
		}

		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}
