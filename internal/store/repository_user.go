package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored row.
//
// Error handling:
//   - unique_violation (23505) on username, email or mobile → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID, user.FirstName, user.LastName, user.Username, user.Email, user.RecoveryEmail,
		user.DOB, user.MobileNumber, user.PasswordHash, user.Role, user.Status,
	)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, writeError(err, ErrUserAlreadyExists)
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, scanError(err, ErrUserAlreadyExists, ErrExecutingStatement)
	}

	return created, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByLogin matches login against username or mobile number.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByLogin", findUserByLogin, login)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) FindUsersByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findUsersByRecoveryEmail, recoveryEmail)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByRecoveryEmail").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	users, err := collect(rows, scanUser)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByRecoveryEmail").Msg("error reading users")
		return nil, err
	}

	return users, nil
}

// UpdateUser applies the non-nil fields of update and returns the new row.
func (r *userRepository) UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to create query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("user_id", userID).Msg("error updating user")
		return models.User{}, writeError(err, ErrUserAlreadyExists)
	}

	user, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: scanning error")
		return models.User{}, scanError(err, ErrUserAlreadyExists, ErrUserNotFound)
	}

	return user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return r.exec(ctx, "*userRepository.UpdatePassword", updateUserPassword, userID, passwordHash)
}

func (r *userRepository) UpdateStatus(ctx context.Context, userID string, status models.UserStatus) error {
	return r.exec(ctx, "*userRepository.UpdateStatus", updateUserStatus, userID, status)
}

// DeleteUser removes the account. Rows still referencing it yield
// [ErrUserHasDependents].
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	err := r.exec(ctx, "*userRepository.DeleteUser", deleteUser, userID)
	if errors.Is(err, ErrReferenceNotFound) {
		return ErrUserHasDependents
	}
	return err
}

// exec runs a single-row statement keyed by user id.
func (r *userRepository) exec(ctx context.Context, fn, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return writeError(err, ErrUserAlreadyExists)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
