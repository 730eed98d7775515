package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
	"golang.org/x/crypto/bcrypt"
)

// userService serves self-service account operations. The caller identity
// always comes from the access token, never from the request body.
type userService struct {
	userRepository        store.UserRepository
	applicationRepository store.ApplicationRepository

	passwordHashCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, applicationRepository store.ApplicationRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:        userRepository,
		applicationRepository: applicationRepository,
		passwordHashCost:      cfg.PasswordHashCost,
		logger:                logger,
	}
}

func (s *userService) GetAccountData(ctx context.Context, identity models.Identity) (models.User, error) {
	return s.GetProfileData(ctx, identity.ID)
}

func (s *userService) GetProfileData(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, userError(err)
	}

	return user, nil
}

func (s *userService) UpdateAccount(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error) {
	if update.IsEmpty() {
		return models.User{}, validators.Invalid(validators.ErrNoFieldsToUpdate.Error())
	}

	user, err := s.userRepository.UpdateUser(ctx, identity.ID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateAccount").Str("user_id", identity.ID).Msg("error updating account")
		return models.User{}, userError(err)
	}

	return user, nil
}

// UpdatePassword replaces the password after the current one verifies.
func (s *userService) UpdatePassword(ctx context.Context, identity models.Identity, req models.UpdatePasswordRequest) error {
	user, err := s.verifyPassword(ctx, identity.ID, req.CurrentPassword)
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.passwordHashCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return userError(s.userRepository.UpdatePassword(ctx, user.ID, string(passwordHash)))
}

// DeleteAccount removes the caller's applications and then the account. An
// account that still owns companies or jobs is kept.
func (s *userService) DeleteAccount(ctx context.Context, identity models.Identity, req models.DeleteAccountRequest) error {
	log := logger.FromContext(ctx)

	user, err := s.verifyPassword(ctx, identity.ID, req.Password)
	if err != nil {
		return err
	}

	if err = s.applicationRepository.DeleteApplicationsByUser(ctx, user.ID); err != nil {
		log.Err(err).Str("func", "*userService.DeleteAccount").Str("user_id", user.ID).Msg("error deleting applications")
		return err
	}

	return userError(s.userRepository.DeleteUser(ctx, user.ID))
}

func (s *userService) GetAccountsByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error) {
	users, err := s.userRepository.FindUsersByRecoveryEmail(ctx, recoveryEmail)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *userService) verifyPassword(ctx context.Context, userID, password string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, userError(err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.FromContext(ctx).Warn().Str("user_id", userID).Msg("wrong password")
		return models.User{}, ErrInvalidPassword
	}

	return user, nil
}
