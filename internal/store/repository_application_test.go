// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var applicationRowColumns = []string{
	"id", "job_id", "user_id", "user_tech_skills", "user_soft_skills", "user_resume", "application_date", "created_at",
}

var exportRowColumns = append(append([]string{}, applicationRowColumns...), "username", "email", "mobile_number")

func newTestApplicationRepo(t *testing.T) (*applicationRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &applicationRepository{db: db, logger: db.logger}, mock
}

func testApplication() models.Application {
	return models.Application{
		ID:              "0192d0a8-7b1e-7c3a-9a51-0c1f2e3d4e01",
		JobID:           "j-1",
		UserID:          "u-1",
		UserTechSkills:  models.Skills{"Go"},
		UserSoftSkills:  models.Skills{"Patience"},
		UserResume:      "https://cv.example.com/u-1.pdf",
		ApplicationDate: "2026-10-19",
	}
}

func TestCreateApplication(t *testing.T) {
	repo, mock := newTestApplicationRepo(t)
	app := testApplication()

	rows := sqlmock.NewRows(applicationRowColumns).
		AddRow(app.ID, app.JobID, app.UserID, "{Go}", "{Patience}", app.UserResume, app.ApplicationDate, time.Now())
	mock.ExpectQuery("INSERT INTO applications AS a").
		WithArgs(app.ID, app.JobID, app.UserID, sqlmock.AnyArg(), sqlmock.AnyArg(), app.UserResume, app.ApplicationDate).
		WillReturnRows(rows)

	created, err := repo.CreateApplication(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, models.Skills{"Go"}, created.UserTechSkills)
	assert.Equal(t, "2026-10-19", created.ApplicationDate)
}

func TestCreateApplication_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "already applied", err: pgError(pgerrcode.UniqueViolation), wantErr: ErrApplicationAlreadyExists},
		{name: "job deleted", err: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrReferenceNotFound},
		{name: "driver error", err: errors.New("conn reset"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestApplicationRepo(t)
			mock.ExpectQuery("INSERT INTO applications").WillReturnError(tt.err)

			_, err := repo.CreateApplication(context.Background(), testApplication())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFindApplicationsByJob(t *testing.T) {
	repo, mock := newTestApplicationRepo(t)
	app := testApplication()

	rows := sqlmock.NewRows(exportRowColumns).
		AddRow(app.ID, app.JobID, app.UserID, "{Go}", "{Patience}", app.UserResume, app.ApplicationDate, time.Now(),
			"john", "john@example.com", "0123456789")
	mock.ExpectQuery("WHERE a.job_id = \\$1").WithArgs("j-1").WillReturnRows(rows)

	result, err := repo.FindApplicationsByJob(context.Background(), "j-1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "john@example.com", result[0].Applicant.Email)
}

func TestFindApplicationsForExport(t *testing.T) {
	repo, mock := newTestApplicationRepo(t)

	mock.ExpectQuery("a.job_id IN \\(\\$1,\\$2\\)").
		WithArgs("j-1", "j-2", "2026-10-19").
		WillReturnRows(sqlmock.NewRows(exportRowColumns))

	result, err := repo.FindApplicationsForExport(context.Background(), []string{"j-1", "j-2"}, "2026-10-19")
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindApplicationsForExport_NoJobsSkipsQuery(t *testing.T) {
	repo, mock := newTestApplicationRepo(t)

	result, err := repo.FindApplicationsForExport(context.Background(), nil, "2026-10-19")
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteApplications(t *testing.T) {
	repo, mock := newTestApplicationRepo(t)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM applications WHERE job_id = \\$1").WithArgs("j-1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("SELECT id FROM jobs WHERE company_id").WithArgs("c-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM applications WHERE user_id").WithArgs("u-1").WillReturnError(errors.New("boom"))

	require.NoError(t, repo.DeleteApplicationsByJob(ctx, "j-1"))
	require.NoError(t, repo.DeleteApplicationsByCompany(ctx, "c-1"))
	assert.ErrorIs(t, repo.DeleteApplicationsByUser(ctx, "u-1"), ErrExecutingStatement)
}
