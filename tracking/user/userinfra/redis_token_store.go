package userinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Abraxas-365/jobtrack/pkg/kernel"
	"github.com/Abraxas-365/jobtrack/tracking/user"
)

const resetTokenPrefix = "reset_token:"

// RedisResetTokenStore implements user.ResetTokenStore on Redis. Expiry is
// delegated to the key TTL, so expired tokens vanish without a sweeper.
type RedisResetTokenStore struct {
	client *redis.Client
}

// NewRedisResetTokenStore creates a reset token store.
func NewRedisResetTokenStore(client *redis.Client) *RedisResetTokenStore {
	return &RedisResetTokenStore{client: client}
}

func (s *RedisResetTokenStore) Save(ctx context.Context, token string, userID kernel.UserID, ttl time.Duration) error {
	if err := s.client.Set(ctx, resetTokenPrefix+token, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	return nil
}

// Consume atomically fetches and deletes the token, so concurrent resets
// with the same token cannot both succeed.
func (s *RedisResetTokenStore) Consume(ctx context.Context, token string) (kernel.UserID, error) {
	val, err := s.client.GetDel(ctx, resetTokenPrefix+token).Result()
	if err == redis.Nil {
		return "", user.ErrInvalidResetToken()
	}
	if err != nil {
		return "", fmt.Errorf("failed to consume reset token: %w", err)
	}

	return kernel.NewUserID(val), nil
}

var _ user.ResetTokenStore = (*RedisResetTokenStore)(nil)
