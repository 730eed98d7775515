package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/crypto"
	"github.com/MKhiriev/go-job-board/internal/events"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
)

type jobService struct {
	jobRepository         store.JobRepository
	companyRepository     store.CompanyRepository
	applicationRepository store.ApplicationRepository

	cipher    crypto.FieldCipher
	publisher events.Publisher
	ids       idGenerator

	logger *logger.Logger
}

func NewJobService(
	jobRepository store.JobRepository,
	companyRepository store.CompanyRepository,
	applicationRepository store.ApplicationRepository,
	cipher crypto.FieldCipher,
	publisher events.Publisher,
	ids idGenerator,
	logger *logger.Logger,
) JobService {
	return &jobService{
		jobRepository:         jobRepository,
		companyRepository:     companyRepository,
		applicationRepository: applicationRepository,
		cipher:                cipher,
		publisher:             publisher,
		ids:                   ids,
		logger:                logger,
	}
}

// AddJob posts a job for the company named in req on behalf of an HR user.
func (s *jobService) AddJob(ctx context.Context, identity models.Identity, req models.AddJobRequest) (models.Job, error) {
	log := logger.FromContext(ctx)

	if err := requireRole(identity, models.RoleCompanyHR); err != nil {
		return models.Job{}, err
	}

	company, err := s.companyRepository.FindCompanyByName(ctx, req.Company)
	if errors.Is(err, store.ErrCompanyNotFound) {
		return models.Job{}, ErrJobCompanyNotFound
	}
	if err != nil {
		return models.Job{}, err
	}

	job, err := s.jobRepository.CreateJob(ctx, models.Job{
		ID:              s.ids.Generate(),
		JobTitle:        req.JobTitle,
		JobLocation:     req.JobLocation,
		WorkingTime:     req.WorkingTime,
		SeniorityLevel:  req.SeniorityLevel,
		JobDescription:  req.JobDescription,
		Salary:          req.Salary,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
		AddedBy:         identity.ID,
		Company:         company.ID,
	})
	if errors.Is(err, store.ErrReferenceNotFound) {
		return models.Job{}, ErrJobCompanyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*jobService.AddJob").Str("company_id", company.ID).Msg("error creating job")
		return models.Job{}, err
	}

	if err = s.publisher.PublishJobCreated(ctx, job); err != nil {
		log.Warn().Err(err).Str("func", "*jobService.AddJob").Str("job_id", job.ID).Msg("job created event was not published")
	}

	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, identity models.Identity, jobID string, update models.JobUpdate) (models.Job, error) {
	if update.IsEmpty() {
		return models.Job{}, validators.Invalid(validators.ErrNoFieldsToUpdate.Error())
	}

	if _, err := s.ownedJob(ctx, identity, jobID); err != nil {
		return models.Job{}, err
	}

	job, err := s.jobRepository.UpdateJob(ctx, jobID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobService.UpdateJob").Str("job_id", jobID).Msg("error updating job")
		return models.Job{}, jobError(err)
	}

	return job, nil
}

// DeleteJob deletes the job's applications, then the job.
func (s *jobService) DeleteJob(ctx context.Context, identity models.Identity, jobID string) error {
	if _, err := s.ownedJob(ctx, identity, jobID); err != nil {
		return err
	}

	if err := s.applicationRepository.DeleteApplicationsByJob(ctx, jobID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobService.DeleteJob").Str("job_id", jobID).Msg("error deleting applications")
		return err
	}

	return jobError(s.jobRepository.DeleteJob(ctx, jobID))
}

// GetJob returns the job with its full company and the plaintext company
// email.
func (s *jobService) GetJob(ctx context.Context, jobID string) (models.JobWithCompany, error) {
	job, err := s.jobRepository.FindJobWithCompany(ctx, jobID)
	if err != nil {
		return models.JobWithCompany{}, jobError(err)
	}

	if err = s.revealEmail(&job.Company); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobService.GetJob").Str("job_id", jobID).Msg("error decrypting company email")
		return models.JobWithCompany{}, err
	}

	return job, nil
}

func (s *jobService) GetAllJobsWithCompanies(ctx context.Context) ([]models.JobWithCompany, error) {
	return s.jobRepository.FindJobsWithCompanyNames(ctx, 0)
}

func (s *jobService) GetLastJobsWithCompanies(ctx context.Context, count uint64) ([]models.JobWithCompany, error) {
	return s.jobRepository.FindJobsWithCompanyNames(ctx, count)
}

func (s *jobService) GetJobsForCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	if _, err := s.companyRepository.FindCompanyByID(ctx, companyID); err != nil {
		return nil, companyError(err)
	}

	return s.jobRepository.FindJobsByCompany(ctx, companyID)
}

// GetJobsForHR lists the caller's jobs with their companies, company emails
// decrypted.
func (s *jobService) GetJobsForHR(ctx context.Context, identity models.Identity) ([]models.JobWithCompany, error) {
	jobs, err := s.jobRepository.FindJobsByHR(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		if err = s.revealEmail(&jobs[i].Company); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*jobService.GetJobsForHR").Str("job_id", jobs[i].ID).Msg("error decrypting company email")
			return nil, err
		}
	}

	return jobs, nil
}

func (s *jobService) FilterJobs(ctx context.Context, filter models.JobFilter) ([]models.JobWithCompany, error) {
	return s.jobRepository.FilterJobs(ctx, filter)
}

// ownedJob loads the job and checks that identity created it.
func (s *jobService) ownedJob(ctx context.Context, identity models.Identity, jobID string) (models.Job, error) {
	job, err := s.jobRepository.FindJobByID(ctx, jobID)
	if err != nil {
		return models.Job{}, jobError(err)
	}

	if err = authorize(identity, models.RoleCompanyHR, job.AddedBy); err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "*jobService.ownedJob").
			Str("job_id", jobID).
			Str("user_id", identity.ID).
			Msg("caller did not add the job")
		return models.Job{}, err
	}

	return job, nil
}

func (s *jobService) revealEmail(company *models.Company) error {
	if company.CompanyEmail == "" {
		return nil
	}

	email, err := s.cipher.Decrypt(company.CompanyEmail)
	if err != nil {
		return fmt.Errorf("error decrypting company email: %w", err)
	}
	company.CompanyEmail = email

	return nil
}

func jobError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrJobNotFound):
		return ErrJobNotFound
	default:
		return err
	}
}
