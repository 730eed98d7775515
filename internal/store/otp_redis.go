package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// consumeScript deletes the key only when it still holds the expected hash.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisOTPStorage keeps recovery code hashes as Redis keys with a TTL.
type redisOTPStorage struct {
	client redis.UniversalClient
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCache, err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisOTPStorage returns an [OTPStorage] backed by client.
func NewRedisOTPStorage(client redis.UniversalClient) OTPStorage {
	return &redisOTPStorage{client: client}
}

func otpKey(userID string) string {
	return otpKeyPrefix + userID
}

func (s *redisOTPStorage) SaveOTP(ctx context.Context, userID, otpHash string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKey(userID), otpHash, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisOTPStorage.SaveOTP").Msg("error saving otp")
		return fmt.Errorf("%w: %w", ErrCache, err)
	}

	return nil
}

// ConsumeOTP compares and deletes in one script; an expired key is already
// gone and reads as a mismatch.
func (s *redisOTPStorage) ConsumeOTP(ctx context.Context, userID, otpHash string) error {
	deleted, err := consumeScript.Run(ctx, s.client, []string{otpKey(userID)}, otpHash).Int()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisOTPStorage.ConsumeOTP").Msg("error consuming otp")
		return fmt.Errorf("%w: %w", ErrCache, err)
	}
	if deleted == 0 {
		return ErrInvalidOTP
	}

	return nil
}
