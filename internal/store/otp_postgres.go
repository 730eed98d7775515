package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-board/internal/logger"
)

// postgresOTPStorage keeps recovery code hashes in the otp_hash and
// otp_expires_at columns of the users table.
type postgresOTPStorage struct {
	db  *DB
	now func() time.Time
}

// NewPostgresOTPStorage returns the default [OTPStorage].
func NewPostgresOTPStorage(db *DB) OTPStorage {
	return &postgresOTPStorage{db: db, now: time.Now}
}

func (s *postgresOTPStorage) SaveOTP(ctx context.Context, userID, otpHash string, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	res, err := s.db.ExecContext(ctx, saveUserOTP, userID, otpHash, s.now().Add(ttl).UTC())
	if err != nil {
		log.Err(err).Str("func", "*postgresOTPStorage.SaveOTP").Msg("error saving otp")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ConsumeOTP clears the code in the same statement that checks it, so a
// code can be used once even under concurrent requests.
func (s *postgresOTPStorage) ConsumeOTP(ctx context.Context, userID, otpHash string) error {
	log := logger.FromContext(ctx)

	res, err := s.db.ExecContext(ctx, consumeUserOTP, userID, otpHash)
	if err != nil {
		log.Err(err).Str("func", "*postgresOTPStorage.ConsumeOTP").Msg("error consuming otp")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrInvalidOTP
	}

	return nil
}
