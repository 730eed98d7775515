package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-board/internal/events"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/report"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/models"
)

type applicationService struct {
	applicationRepository store.ApplicationRepository
	jobRepository         store.JobRepository
	companyRepository     store.CompanyRepository

	publisher events.Publisher
	ids       idGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewApplicationService(
	applicationRepository store.ApplicationRepository,
	jobRepository store.JobRepository,
	companyRepository store.CompanyRepository,
	publisher events.Publisher,
	ids idGenerator,
	logger *logger.Logger,
) ApplicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		jobRepository:         jobRepository,
		companyRepository:     companyRepository,
		publisher:             publisher,
		ids:                   ids,
		now:                   time.Now,
		logger:                logger,
	}
}

// ApplyForJob stores the caller's application dated today. A second
// application to the same job is rejected by the store.
func (s *applicationService) ApplyForJob(ctx context.Context, identity models.Identity, jobID string, req models.ApplyRequest) (models.Application, error) {
	log := logger.FromContext(ctx)

	if _, err := s.jobRepository.FindJobByID(ctx, jobID); err != nil {
		return models.Application{}, jobError(err)
	}

	application, err := s.applicationRepository.CreateApplication(ctx, models.Application{
		ID:              s.ids.Generate(),
		JobID:           jobID,
		UserID:          identity.ID,
		UserTechSkills:  req.UserTechSkills,
		UserSoftSkills:  req.UserSoftSkills,
		UserResume:      req.UserResume,
		ApplicationDate: today(s.now),
	})
	switch {
	case errors.Is(err, store.ErrApplicationAlreadyExists):
		return models.Application{}, ErrAlreadyApplied
	case errors.Is(err, store.ErrReferenceNotFound):
		// the job was deleted between the lookup and the insert
		return models.Application{}, ErrJobNotFound
	case err != nil:
		log.Err(err).Str("func", "*applicationService.ApplyForJob").Str("job_id", jobID).Msg("error creating application")
		return models.Application{}, err
	}

	if err = s.publisher.PublishApplicationSubmitted(ctx, application); err != nil {
		log.Warn().Err(err).Str("func", "*applicationService.ApplyForJob").Str("application_id", application.ID).Msg("application event was not published")
	}

	return application, nil
}

func (s *applicationService) GetApplicationsForJob(ctx context.Context, jobID string) ([]models.ApplicationExportRow, error) {
	if _, err := s.jobRepository.FindJobByID(ctx, jobID); err != nil {
		return nil, jobError(err)
	}

	return s.applicationRepository.FindApplicationsByJob(ctx, jobID)
}

func (s *applicationService) ExportApplications(ctx context.Context, identity models.Identity, companyID string) (models.ExportFile, error) {
	log := logger.FromContext(ctx)

	company, err := s.companyRepository.FindCompanyByID(ctx, companyID)
	if err != nil {
		return models.ExportFile{}, companyError(err)
	}

	if err = authorize(identity, models.RoleCompanyHR, company.CompanyHR); err != nil {
		return models.ExportFile{}, err
	}

	jobs, err := s.jobRepository.FindJobsByCompany(ctx, companyID)
	if err != nil {
		return models.ExportFile{}, err
	}

	jobIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}

	now := s.now()
	rows, err := s.applicationRepository.FindApplicationsForExport(ctx, jobIDs, now.Format(models.ApplicationDateLayout))
	if err != nil {
		return models.ExportFile{}, err
	}

	file, err := report.RenderApplications(rows, now)
	if err != nil {
		log.Err(err).Str("func", "*applicationService.ExportApplications").Str("company_id", companyID).Msg("error rendering export")
		return models.ExportFile{}, fmt.Errorf("error rendering export: %w", err)
	}

	log.Info().Str("company_id", companyID).Int("applications", len(rows)).Msg("applications exported")
	return file, nil
}
