package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/crypto"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
)

// companyService manages companies owned by HR users. Company emails are
// stored encrypted next to a keyed hash that backs the uniqueness check.
type companyService struct {
	companyRepository     store.CompanyRepository
	jobRepository         store.JobRepository
	applicationRepository store.ApplicationRepository

	cipher  crypto.FieldCipher
	ids     idGenerator
	hashKey string

	logger *logger.Logger
}

func NewCompanyService(
	companyRepository store.CompanyRepository,
	jobRepository store.JobRepository,
	applicationRepository store.ApplicationRepository,
	cipher crypto.FieldCipher,
	ids idGenerator,
	cfg config.App,
	logger *logger.Logger,
) CompanyService {
	return &companyService{
		companyRepository:     companyRepository,
		jobRepository:         jobRepository,
		applicationRepository: applicationRepository,
		cipher:                cipher,
		ids:                   ids,
		hashKey:               cfg.HashKey,
		logger:                logger,
	}
}

func (s *companyService) CreateCompany(ctx context.Context, identity models.Identity, req models.CreateCompanyRequest) (models.Company, error) {
	log := logger.FromContext(ctx)

	if err := requireRole(identity, models.RoleCompanyHR); err != nil {
		return models.Company{}, err
	}

	encrypted, hash, err := s.protectEmail(req.CompanyEmail)
	if err != nil {
		log.Err(err).Str("func", "*companyService.CreateCompany").Msg("error encrypting company email")
		return models.Company{}, err
	}

	company, err := s.companyRepository.CreateCompany(ctx, models.Company{
		ID:                s.ids.Generate(),
		CompanyName:       req.CompanyName,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: req.NumberOfEmployees,
		CompanyEmail:      encrypted,
		CompanyEmailHash:  hash,
		CompanyHR:         identity.ID,
	})
	if err != nil {
		log.Err(err).Str("func", "*companyService.CreateCompany").Str("company_name", req.CompanyName).Msg("error creating company")
		return models.Company{}, companyError(err)
	}

	return company, nil
}

// UpdateCompany applies update to an owned company. A new email is encrypted
// and re-indexed like on creation.
func (s *companyService) UpdateCompany(ctx context.Context, identity models.Identity, companyID string, update models.CompanyUpdate) (models.Company, error) {
	if update.IsEmpty() {
		return models.Company{}, validators.Invalid(validators.ErrNoFieldsToUpdate.Error())
	}

	if _, err := s.ownedCompany(ctx, identity, companyID); err != nil {
		return models.Company{}, err
	}

	if update.CompanyEmail != nil {
		encrypted, hash, err := s.protectEmail(*update.CompanyEmail)
		if err != nil {
			return models.Company{}, err
		}
		update.CompanyEmail = &encrypted
		update.CompanyEmailHash = &hash
	}

	company, err := s.companyRepository.UpdateCompany(ctx, companyID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*companyService.UpdateCompany").Str("company_id", companyID).Msg("error updating company")
		return models.Company{}, companyError(err)
	}

	return company, nil
}

// DeleteCompany deletes the applications of the company's jobs, the jobs,
// then the company. The first failing step stops the rest.
func (s *companyService) DeleteCompany(ctx context.Context, identity models.Identity, companyID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.ownedCompany(ctx, identity, companyID); err != nil {
		return err
	}

	if err := s.applicationRepository.DeleteApplicationsByCompany(ctx, companyID); err != nil {
		log.Err(err).Str("func", "*companyService.DeleteCompany").Str("company_id", companyID).Msg("error deleting applications")
		return err
	}

	if err := s.jobRepository.DeleteJobsByCompany(ctx, companyID); err != nil {
		log.Err(err).Str("func", "*companyService.DeleteCompany").Str("company_id", companyID).Msg("error deleting jobs")
		return err
	}

	return companyError(s.companyRepository.DeleteCompany(ctx, companyID))
}

func (s *companyService) GetCompaniesForHR(ctx context.Context, identity models.Identity) ([]models.Company, error) {
	return s.companyRepository.FindCompaniesByHR(ctx, identity.ID)
}

func (s *companyService) GetCompanyData(ctx context.Context, identity models.Identity, companyID string) (models.CompanyDataResponse, error) {
	company, err := s.ownedCompany(ctx, identity, companyID)
	if err != nil {
		return models.CompanyDataResponse{}, err
	}

	jobs, err := s.jobRepository.FindJobsByCompany(ctx, companyID)
	if err != nil {
		return models.CompanyDataResponse{}, err
	}

	return models.CompanyDataResponse{Company: company, Jobs: jobs}, nil
}

func (s *companyService) SearchCompaniesByName(ctx context.Context, fragment string) ([]models.Company, error) {
	return s.companyRepository.SearchCompaniesByName(ctx, fragment)
}

// ownedCompany loads the company and checks that identity is its HR.
func (s *companyService) ownedCompany(ctx context.Context, identity models.Identity, companyID string) (models.Company, error) {
	company, err := s.companyRepository.FindCompanyByID(ctx, companyID)
	if err != nil {
		return models.Company{}, companyError(err)
	}

	if err = authorize(identity, models.RoleCompanyHR, company.CompanyHR); err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "*companyService.ownedCompany").
			Str("company_id", companyID).
			Str("user_id", identity.ID).
			Msg("caller does not own the company")
		return models.Company{}, err
	}

	return company, nil
}

// protectEmail returns the ciphertext and the blind index of email.
func (s *companyService) protectEmail(email string) (string, string, error) {
	encrypted, err := s.cipher.Encrypt(email)
	if err != nil {
		return "", "", fmt.Errorf("error encrypting company email: %w", err)
	}

	return encrypted, emailIndex(email, s.hashKey), nil
}

// emailIndex is the deterministic keyed hash of a normalized email.
func emailIndex(email, hashKey string) string {
	return utils.HashString(strings.ToLower(strings.TrimSpace(email)), hashKey)
}

func companyError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrCompanyNotFound):
		return ErrCompanyNotFound
	case errors.Is(err, store.ErrCompanyAlreadyExists):
		return ErrCompanyAlreadyExists
	case errors.Is(err, store.ErrReferenceNotFound):
		return ErrUserNotFound
	default:
		return err
	}
}
