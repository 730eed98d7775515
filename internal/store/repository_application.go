// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
)

// applicationRepository is the PostgreSQL-backed implementation of
// [ApplicationRepository].
type applicationRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewApplicationRepository(db *DB, logger *logger.Logger) ApplicationRepository {
	logger.Debug().Msg("creating application repository")
	return &applicationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateApplication inserts application. The UNIQUE (job_id, user_id)
// constraint turns a second submission into [ErrApplicationAlreadyExists].
func (r *applicationRepository) CreateApplication(ctx context.Context, application models.Application) (models.Application, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createApplication,
		application.ID, application.JobID, application.UserID, application.UserTechSkills,
		application.UserSoftSkills, application.UserResume, application.ApplicationDate,
	)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "applicationRepository.CreateApplication").
			Str("job_id", application.JobID).
			Str("user_id", application.UserID).
			Msg("error inserting application")
		return models.Application{}, writeError(err, ErrApplicationAlreadyExists)
	}

	created, err := scanApplication(row)
	if err != nil {
		log.Err(err).Str("func", "applicationRepository.CreateApplication").Msg("failed to scan application row")
		return models.Application{}, scanError(err, ErrApplicationAlreadyExists, ErrExecutingStatement)
	}

	return created, nil
}

func (r *applicationRepository) FindApplicationsByJob(ctx context.Context, jobID string) ([]models.ApplicationExportRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findApplicationsByJob, jobID)
	if err != nil {
		log.Err(err).Str("func", "applicationRepository.FindApplicationsByJob").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collect(rows, scanApplicationRow)
}

func (r *applicationRepository) FindApplicationsForExport(ctx context.Context, jobIDs []string, date string) ([]models.ApplicationExportRow, error) {
	log := logger.FromContext(ctx)

	if len(jobIDs) == 0 {
		return []models.ApplicationExportRow{}, nil
	}

	query, args, err := buildFindApplicationsForExportQuery(ctx, jobIDs, date)
	if err != nil {
		log.Err(err).Str("func", "applicationRepository.FindApplicationsForExport").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "applicationRepository.FindApplicationsForExport").
			Int("job ids count", len(jobIDs)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collect(rows, scanApplicationRow)
}

func (r *applicationRepository) DeleteApplicationsByJob(ctx context.Context, jobID string) error {
	return r.exec(ctx, "applicationRepository.DeleteApplicationsByJob", deleteApplicationsByJob, jobID)
}

func (r *applicationRepository) DeleteApplicationsByCompany(ctx context.Context, companyID string) error {
	return r.exec(ctx, "applicationRepository.DeleteApplicationsByCompany", deleteApplicationsByCompany, companyID)
}

func (r *applicationRepository) DeleteApplicationsByUser(ctx context.Context, userID string) error {
	return r.exec(ctx, "applicationRepository.DeleteApplicationsByUser", deleteApplicationsByUser, userID)
}

func (r *applicationRepository) exec(ctx context.Context, fn, query, arg string) error {
	if _, err := r.db.ExecContext(ctx, query, arg); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error deleting applications")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
