package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpMin   = 100000
	otpRange = 900000
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes, recovery codes as HMAC-SHA256
// hashes, and sessions are stateless HS256 JWTs.
type authService struct {
	userRepository store.UserRepository
	otpStorage     store.OTPStorage
	ids            idGenerator

	// hashKey is the HMAC secret for recovery code hashes.
	hashKey string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	passwordHashCost int
	otpDuration      time.Duration

	// otp issues recovery codes; replaced in tests.
	otp func() (int, error)

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
func NewAuthService(userRepository store.UserRepository, otpStorage store.OTPStorage, ids idGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		otpStorage:       otpStorage,
		ids:              ids,
		hashKey:          cfg.HashKey,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		passwordHashCost: cfg.PasswordHashCost,
		otpDuration:      cfg.OTPDuration,
		otp:              generateOTP,
		logger:           logger,
	}
}

// SignUp stores a new offline account and issues its recovery code. The code
// is returned once; only its hash is kept.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("error hashing password")
		return models.SignUpResponse{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:            a.ids.Generate(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Username:      req.Username,
		Email:         req.Email,
		RecoveryEmail: req.RecoveryEmail,
		DOB:           req.DOB,
		MobileNumber:  req.MobileNumber,
		PasswordHash:  string(passwordHash),
		Role:          req.Role,
		Status:        models.StatusOffline,
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return models.SignUpResponse{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Str("username", req.Username).Msg("user creation ended with error")
		return models.SignUpResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	otp, err := a.otp()
	if err != nil {
		return models.SignUpResponse{}, fmt.Errorf("error generating otp: %w", err)
	}

	if err = a.otpStorage.SaveOTP(ctx, user.ID, a.hashOTP(otp), a.otpDuration); err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Str("user_id", user.ID).Msg("error saving otp")
		return models.SignUpResponse{}, fmt.Errorf("error saving otp: %w", err)
	}

	return models.SignUpResponse{User: user, OTP: otp}, nil
}

// SignIn accepts a username or a mobile number, marks the account online and
// issues an access token.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByLogin(ctx, req.Login())
	if err != nil {
		return models.TokenResponse{}, userError(err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("func", "*authService.SignIn").Str("user_id", user.ID).Msg("wrong password")
		return models.TokenResponse{}, ErrInvalidPassword
	}

	if err = a.userRepository.UpdateStatus(ctx, user.ID, models.StatusOnline); err != nil {
		return models.TokenResponse{}, userError(err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignIn").Msg("error creating token")
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenResponse{
		Token:       token.SignedString,
		AccessToken: utils.FormatAccessToken(token.SignedString),
	}, nil
}

func (a *authService) SignOut(ctx context.Context, identity models.Identity) error {
	return userError(a.userRepository.UpdateStatus(ctx, identity.ID, models.StatusOffline))
}

// Authenticate verifies the token and loads its subject. Every call costs one
// signature check and one user lookup.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if accessToken == "" {
		return models.Identity{}, ErrAccessTokenRequired
	}

	signed, err := utils.ParseAccessToken(accessToken)
	if err != nil {
		return models.Identity{}, ErrInvalidAccessToken
	}

	token, err := utils.ValidateAndParseJWTToken(signed, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Authenticate").Msg("token rejected")
		return models.Identity{}, ErrInvalidAccessToken
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Identity{}, ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("error loading token subject")
		return models.Identity{}, fmt.Errorf("error loading token subject: %w", err)
	}

	return models.Identity{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// ForgetPassword resets the password of the account owning email when the
// recovery code matches. The code is consumed before the new password is
// written, so it cannot be replayed.
func (a *authService) ForgetPassword(ctx context.Context, req models.ForgetPasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return userError(err)
	}

	err = a.otpStorage.ConsumeOTP(ctx, user.ID, a.hashOTP(req.OTP))
	if errors.Is(err, store.ErrInvalidOTP) {
		log.Warn().Str("func", "*authService.ForgetPassword").Str("user_id", user.ID).Msg("invalid otp")
		return ErrInvalidOTP
	}
	if err != nil {
		return fmt.Errorf("error consuming otp: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.passwordHashCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return userError(a.userRepository.UpdatePassword(ctx, user.ID, string(passwordHash)))
}

func (a *authService) hashOTP(otp int) string {
	return utils.HashString(strconv.Itoa(otp), a.hashKey)
}

// generateOTP returns a uniformly random 6-digit code.
func generateOTP() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return 0, err
	}
	return otpMin + int(n.Int64()), nil
}

// userError translates user store errors to their service counterparts.
func userError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrUserAlreadyExists):
		return ErrUserAlreadyExists
	case errors.Is(err, store.ErrUserHasDependents):
		return ErrUserHasDependents
	default:
		return err
	}
}
