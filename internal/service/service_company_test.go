package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/mock"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type companyMocks struct {
	companies *mock.MockCompanyRepository
	jobs      *mock.MockJobRepository
	apps      *mock.MockApplicationRepository
	cipher    *mock.MockFieldCipher
}

func newTestCompanySvc(t *testing.T) (CompanyService, companyMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := companyMocks{
		companies: mock.NewMockCompanyRepository(ctrl),
		jobs:      mock.NewMockJobRepository(ctrl),
		apps:      mock.NewMockApplicationRepository(ctrl),
		cipher:    mock.NewMockFieldCipher(ctrl),
	}

	svc := NewCompanyService(m.companies, m.jobs, m.apps, m.cipher, fixedID("c-new"), testAppConfig, logger.Nop())
	return svc, m
}

func createCompanyRequest() models.CreateCompanyRequest {
	return models.CreateCompanyRequest{
		CompanyName: "Acme", Description: "d", Industry: "IT", Address: "Cairo",
		NumberOfEmployees: 20, CompanyEmail: "HR@Acme.com",
	}
}

func TestCompanyService_CreateCompany_Success(t *testing.T) {
	svc, m := newTestCompanySvc(t)

	m.cipher.EXPECT().Encrypt("HR@Acme.com").Return("cipher", nil)
	m.companies.EXPECT().CreateCompany(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Company) (models.Company, error) {
			assert.Equal(t, "c-new", c.ID)
			assert.Equal(t, "hr-1", c.CompanyHR)
			assert.Equal(t, "cipher", c.CompanyEmail)
			assert.Equal(t, emailIndex("hr@acme.com", "hash-key"), c.CompanyEmailHash)
			return c, nil
		})

	company, err := svc.CreateCompany(context.Background(), hrIdentity, createCompanyRequest())
	require.NoError(t, err)
	assert.Equal(t, "Acme", company.CompanyName)
}

func TestCompanyService_CreateCompany_RequiresHR(t *testing.T) {
	svc, _ := newTestCompanySvc(t)

	_, err := svc.CreateCompany(context.Background(), plainIdentity, createCompanyRequest())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCompanyService_CreateCompany_Duplicate(t *testing.T) {
	svc, m := newTestCompanySvc(t)

	m.cipher.EXPECT().Encrypt(gomock.Any()).Return("cipher", nil)
	m.companies.EXPECT().CreateCompany(gomock.Any(), gomock.Any()).Return(models.Company{}, store.ErrCompanyAlreadyExists)

	_, err := svc.CreateCompany(context.Background(), hrIdentity, createCompanyRequest())
	assert.ErrorIs(t, err, ErrCompanyAlreadyExists)
}

func TestCompanyService_CreateCompany_EncryptFails(t *testing.T) {
	svc, m := newTestCompanySvc(t)

	m.cipher.EXPECT().Encrypt(gomock.Any()).Return("", errors.New("boom"))

	_, err := svc.CreateCompany(context.Background(), hrIdentity, createCompanyRequest())
	assert.Error(t, err)
}

func TestEmailIndex_Normalizes(t *testing.T) {
	assert.Equal(t, emailIndex("hr@acme.com", "k"), emailIndex("  HR@Acme.COM ", "k"))
	assert.NotEqual(t, emailIndex("hr@acme.com", "k"), emailIndex("hr@acme.com", "other"))
}

func TestCompanyService_UpdateCompany(t *testing.T) {
	owned := models.Company{ID: "c-1", CompanyHR: "hr-1"}

	t.Run("empty update", func(t *testing.T) {
		svc, _ := newTestCompanySvc(t)

		_, err := svc.UpdateCompany(context.Background(), hrIdentity, "c-1", models.CompanyUpdate{})
		assert.ErrorIs(t, err, validators.ErrValidation)
	})

	t.Run("not the owner", func(t *testing.T) {
		svc, m := newTestCompanySvc(t)

		m.companies.EXPECT().FindCompanyByID(gomock.Any(), "c-1").Return(owned, nil)

		_, err := svc.UpdateCompany(context.Background(), otherHR, "c-1", models.CompanyUpdate{Industry: strPtr("x")})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing company", func(t *testing.T) {
		svc, m := newTestCompanySvc(t)

		m.companies.EXPECT().FindCompanyByID(gomock.Any(), "c-9").Return(models.Company{}, store.ErrCompanyNotFound)

		_, err := svc.UpdateCompany(context.Background(), hrIdentity, "c-9", models.CompanyUpdate{Industry: strPtr("x")})
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})

	t.Run("new email is encrypted and indexed", func(t *testing.T) {
		svc, m := newTestCompanySvc(t)

		m.companies.EXPECT().FindCompanyByID(gomock.Any(), "c-1").Return(owned, nil)
		m.cipher.EXPECT().Encrypt("new@acme.com").Return("cipher2", nil)
		m.companies.EXPECT().UpdateCompany(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u models.CompanyUpdate) (models.Company, error) {
				require.NotNil(t, u.CompanyEmail)
				require.NotNil(t, u.CompanyEmailHash)
				assert.Equal(t, "cipher2", *u.CompanyEmail)
				assert.Equal(t, emailIndex("new@acme.com", "hash-key"), *u.CompanyEmailHash)
				return models.Company{ID: "c-1", CompanyEmail: *u.CompanyEmail}, nil
			})

		got, err := svc.UpdateCompany(context.Background(), hrIdentity, "c-1", models.CompanyUpdate{CompanyEmail: strPtr("new@acme.com")})
		require.NoError(t, err)
		assert.Equal(t, "c-1", got.ID)
	})
}

func TestCompanyService_DeleteCompany(t *testing.T) {
	owned := models.Company{ID: "c-1", CompanyHR: "hr-1"}

	t.Run("cascade order", func(t *testing.T) {
		svc, m := newTestCompanySvc(t)
		ctx := context.Background()

		gomock.InOrder(
			m.companies.EXPECT().FindCompanyByID(ctx, "c-1").Return(owned, nil),
			m.apps.EXPECT().DeleteApplicationsByCompany(ctx, "c-1").Return(nil),
			m.jobs.EXPECT().DeleteJobsByCompany(ctx, "c-1").Return(nil),
			m.companies.EXPECT().DeleteCompany(ctx, "c-1").Return(nil),
		)

		assert.NoError(t, svc.DeleteCompany(ctx, hrIdentity, "c-1"))
	})

	t.Run("failing step stops the cascade", func(t *testing.T) {
		svc, m := newTestCompanySvc(t)

		m.companies.EXPECT().FindCompanyByID(gomock.Any(), "c-1").Return(owned, nil)
		m.apps.EXPECT().DeleteApplicationsByCompany(gomock.Any(), "c-1").Return(store.ErrExecutingStatement)

		err := svc.DeleteCompany(context.Background(), hrIdentity, "c-1")
		assert.ErrorIs(t, err, store.ErrExecutingStatement)
	})

	t.Run("plain user is forbidden", func(t *testing.T) {
		svc, m := newTestCompanySvc(t)

		m.companies.EXPECT().FindCompanyByID(gomock.Any(), "c-1").Return(owned, nil)

		err := svc.DeleteCompany(context.Background(), models.Identity{ID: "hr-1", Role: models.RoleUser}, "c-1")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestCompanyService_GetCompanyData(t *testing.T) {
	svc, m := newTestCompanySvc(t)

	m.companies.EXPECT().FindCompanyByID(gomock.Any(), "c-1").Return(models.Company{ID: "c-1", CompanyHR: "hr-1"}, nil)
	m.jobs.EXPECT().FindJobsByCompany(gomock.Any(), "c-1").Return([]models.Job{{ID: "j-1"}}, nil)

	got, err := svc.GetCompanyData(context.Background(), hrIdentity, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", got.Company.ID)
	assert.Len(t, got.Jobs, 1)
}

func TestCompanyService_Listings(t *testing.T) {
	svc, m := newTestCompanySvc(t)

	m.companies.EXPECT().FindCompaniesByHR(gomock.Any(), "hr-1").Return([]models.Company{{ID: "c-1"}}, nil)
	m.companies.EXPECT().SearchCompaniesByName(gomock.Any(), "ac").Return([]models.Company{{ID: "c-1"}, {ID: "c-2"}}, nil)

	mine, err := svc.GetCompaniesForHR(context.Background(), hrIdentity)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	found, err := svc.SearchCompaniesByName(context.Background(), "ac")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestCompanyError(t *testing.T) {
	tests := []struct {
		in   error
		want error
	}{
		{store.ErrCompanyNotFound, ErrCompanyNotFound},
		{store.ErrCompanyAlreadyExists, ErrCompanyAlreadyExists},
		{store.ErrReferenceNotFound, ErrUserNotFound},
	}

	for _, tt := range tests {
		assert.ErrorIs(t, companyError(tt.in), tt.want)
	}
	assert.NoError(t, companyError(nil))
}
