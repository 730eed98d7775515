// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/mock"
	"github.com/MKhiriev/go-job-board/internal/report"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var exportDay = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

type applicationMocks struct {
	apps      *mock.MockApplicationRepository
	jobs      *mock.MockJobRepository
	companies *mock.MockCompanyRepository
	publisher *mock.MockPublisher
}

func newTestApplicationSvc(t *testing.T) (*applicationService, applicationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := applicationMocks{
		apps:      mock.NewMockApplicationRepository(ctrl),
		jobs:      mock.NewMockJobRepository(ctrl),
		companies: mock.NewMockCompanyRepository(ctrl),
		publisher: mock.NewMockPublisher(ctrl),
	}

	svc := NewApplicationService(m.apps, m.jobs, m.companies, m.publisher, fixedID("a-new"), logger.Nop()).(*applicationService)
	svc.now = fixedClock(exportDay)
	return svc, m
}

func applyRequest() models.ApplyRequest {
	return models.ApplyRequest{UserTechSkills: models.Skills{"Go"}, UserSoftSkills: models.Skills{"Calm"}, UserResume: "cv.pdf"}
}

func TestApplicationService_ApplyForJob_Success(t *testing.T) {
	svc, m := newTestApplicationSvc(t)
	ctx := context.Background()

	m.jobs.EXPECT().FindJobByID(ctx, "j-1").Return(models.Job{ID: "j-1"}, nil)
	m.apps.EXPECT().CreateApplication(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Application) (models.Application, error) {
			assert.Equal(t, "a-new", a.ID)
			assert.Equal(t, "u-1", a.UserID)
			assert.Equal(t, "2026-10-19", a.ApplicationDate)
			return a, nil
		})
	m.publisher.EXPECT().PublishApplicationSubmitted(ctx, gomock.Any()).Return(nil)

	app, err := svc.ApplyForJob(ctx, plainIdentity, "j-1", applyRequest())
	require.NoError(t, err)
	assert.Equal(t, "j-1", app.JobID)
}

func TestApplicationService_ApplyForJob_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m applicationMocks)
		wantErr error
	}{
		{
			name: "missing job",
			setup: func(m applicationMocks) {
				m.jobs.EXPECT().FindJobByID(gomock.Any(), "j-1").Return(models.Job{}, store.ErrJobNotFound)
			},
			wantErr: ErrJobNotFound,
		},
		{
			name: "applied twice",
			setup: func(m applicationMocks) {
				m.jobs.EXPECT().FindJobByID(gomock.Any(), "j-1").Return(models.Job{ID: "j-1"}, nil)
				m.apps.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(models.Application{}, store.ErrApplicationAlreadyExists)
			},
			wantErr: ErrAlreadyApplied,
		},
		{
			name: "job deleted meanwhile",
			setup: func(m applicationMocks) {
				m.jobs.EXPECT().FindJobByID(gomock.Any(), "j-1").Return(models.Job{ID: "j-1"}, nil)
				m.apps.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(models.Application{}, store.ErrReferenceNotFound)
			},
			wantErr: ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestApplicationSvc(t)
			tt.setup(m)

			_, err := svc.ApplyForJob(context.Background(), plainIdentity, "j-1", applyRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplicationService_GetApplicationsForJob(t *testing.T) {
	svc, m := newTestApplicationSvc(t)

	m.jobs.EXPECT().FindJobByID(gomock.Any(), "j-1").Return(models.Job{ID: "j-1"}, nil)
	m.apps.EXPECT().FindApplicationsByJob(gomock.Any(), "j-1").Return([]models.ApplicationExportRow{
		{Application: models.Application{ID: "a-1"}, Applicant: models.Applicant{Username: "ab1"}},
	}, nil)

	rows, err := svc.GetApplicationsForJob(context.Background(), "j-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ab1", rows[0].Applicant.Username)
}

func TestApplicationService_ExportApplications(t *testing.T) {
	svc, m := newTestApplicationSvc(t)
	ctx := context.Background()

	m.companies.EXPECT().FindCompanyByID(ctx, "c-1").Return(models.Company{ID: "c-1", CompanyHR: "hr-1"}, nil)
	m.jobs.EXPECT().FindJobsByCompany(ctx, "c-1").Return([]models.Job{{ID: "j-1"}, {ID: "j-2"}}, nil)
	m.apps.EXPECT().FindApplicationsForExport(ctx, []string{"j-1", "j-2"}, "2026-10-19").Return([]models.ApplicationExportRow{
		{
			Application: models.Application{ID: "a-1", JobID: "j-1", UserTechSkills: models.Skills{"Go"}, ApplicationDate: "2026-10-19"},
			Applicant:   models.Applicant{Username: "ab1", Email: "a@b.com"},
		},
	}, nil)

	file, err := svc.ExportApplications(ctx, hrIdentity, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Applications-2026-10-19.xlsx", file.FileName)
	assert.Equal(t, report.ContentType, file.ContentType)

	book, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	t.Cleanup(func() { _ = book.Close() })

	rows, err := book.GetRows(report.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestApplicationService_ExportApplications_NotOwner(t *testing.T) {
	svc, m := newTestApplicationSvc(t)

	m.companies.EXPECT().FindCompanyByID(gomock.Any(), "c-1").Return(models.Company{ID: "c-1", CompanyHR: "hr-1"}, nil)

	_, err := svc.ExportApplications(context.Background(), otherHR, "c-1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplicationService_ExportApplications_MissingCompany(t *testing.T) {
	svc, m := newTestApplicationSvc(t)

	m.companies.EXPECT().FindCompanyByID(gomock.Any(), "c-9").Return(models.Company{}, store.ErrCompanyNotFound)

	_, err := svc.ExportApplications(context.Background(), hrIdentity, "c-9")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}
