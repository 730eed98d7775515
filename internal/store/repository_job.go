package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
)

// jobRepository is the PostgreSQL-backed implementation of [JobRepository].
// List queries are assembled with squirrel, single-row ones are constants.
type jobRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewJobRepository(db *DB, logger *logger.Logger) JobRepository {
	logger.Debug().Msg("creating job repository")
	return &jobRepository{
		db:     db,
		logger: logger,
	}
}

// CreateJob inserts job. An unknown company or user yields
// [ErrReferenceNotFound].
func (r *jobRepository) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createJob,
		job.ID, job.JobTitle, job.JobLocation, job.WorkingTime, job.SeniorityLevel, job.JobDescription,
		job.Salary, job.TechnicalSkills, job.SoftSkills, job.AddedBy, job.Company,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "jobRepository.CreateJob").Msg("error inserting job")
		return models.Job{}, writeError(err, ErrExecutingStatement)
	}

	created, err := scanJob(row)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.CreateJob").Msg("failed to scan job row")
		return models.Job{}, scanError(err, ErrExecutingStatement, ErrExecutingStatement)
	}

	return created, nil
}

func (r *jobRepository) FindJobByID(ctx context.Context, jobID string) (models.Job, error) {
	job, err := scanJob(r.db.QueryRowContext(ctx, findJobByID, jobID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, ErrJobNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "jobRepository.FindJobByID").Msg("error finding job")
		return models.Job{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return job, nil
}

func (r *jobRepository) FindJobWithCompany(ctx context.Context, jobID string) (models.JobWithCompany, error) {
	job, err := scanJobWithCompany(r.db.QueryRowContext(ctx, findJobWithCompany, jobID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.JobWithCompany{}, ErrJobNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "jobRepository.FindJobWithCompany").Msg("error finding job")
		return models.JobWithCompany{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return job, nil
}

func (r *jobRepository) FindJobsWithCompanyNames(ctx context.Context, limit uint64) ([]models.JobWithCompany, error) {
	query, args, err := buildFindJobsWithCompanyNamesQuery(ctx, limit)
	if err != nil {
		return nil, err
	}

	return r.listWithCompany(ctx, "jobRepository.FindJobsWithCompanyNames", query, args)
}

func (r *jobRepository) FindJobsByHR(ctx context.Context, hrID string) ([]models.JobWithCompany, error) {
	query, args, err := buildFindJobsByHRQuery(ctx, hrID)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.FindJobsByHR").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collect(rows, scanJobWithCompany)
}

func (r *jobRepository) FilterJobs(ctx context.Context, filter models.JobFilter) ([]models.JobWithCompany, error) {
	query, args, err := buildFilterJobsQuery(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "jobRepository.FilterJobs").Msg("failed to create query")
		return nil, err
	}

	return r.listWithCompany(ctx, "jobRepository.FilterJobs", query, args)
}

func (r *jobRepository) listWithCompany(ctx context.Context, fn, query string, args []any) ([]models.JobWithCompany, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	jobs, err := collect(rows, scanJobWithCompanyName)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to read job rows")
		return nil, err
	}

	return jobs, nil
}

func (r *jobRepository) FindJobsByCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findJobsByCompany, companyID)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.FindJobsByCompany").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	jobs, err := collect(rows, scanJob)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.FindJobsByCompany").Msg("failed to read job rows")
		return nil, err
	}

	return jobs, nil
}

func (r *jobRepository) UpdateJob(ctx context.Context, jobID string, update models.JobUpdate) (models.Job, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateJobQuery(ctx, jobID, update)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.UpdateJob").Msg("failed to create query")
		return models.Job{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "jobRepository.UpdateJob").Str("job_id", jobID).Msg("error updating job")
		return models.Job{}, writeError(err, ErrExecutingStatement)
	}

	job, err := scanJob(row)
	if err != nil {
		return models.Job{}, scanError(err, ErrExecutingStatement, ErrJobNotFound)
	}

	return job, nil
}

// DeleteJob removes one job. Its applications must be deleted first.
func (r *jobRepository) DeleteJob(ctx context.Context, jobID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteJob, jobID)
	if err != nil {
		log.Err(err).Str("func", "jobRepository.DeleteJob").Str("job_id", jobID).Msg("error deleting job")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// DeleteJobsByCompany removes every job of the company. Zero rows is not an error.
func (r *jobRepository) DeleteJobsByCompany(ctx context.Context, companyID string) error {
	if _, err := r.db.ExecContext(ctx, deleteJobsByCompany, companyID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "jobRepository.DeleteJobsByCompany").Str("company_id", companyID).Msg("error deleting jobs")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
