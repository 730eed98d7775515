package service

import (
	"context"

	"github.com/MKhiriev/go-job-board/models"
)

// AuthService owns credentials: sign-up, sign-in, session status, access
// token checks and OTP based password recovery.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.TokenResponse, error)
	SignOut(ctx context.Context, identity models.Identity) error
	// Authenticate resolves the raw accesstoken header to the caller.
	Authenticate(ctx context.Context, accessToken string) (models.Identity, error)
	ForgetPassword(ctx context.Context, req models.ForgetPasswordRequest) error
}

type UserService interface {
	GetAccountData(ctx context.Context, identity models.Identity) (models.User, error)
	GetProfileData(ctx context.Context, userID string) (models.User, error)
	UpdateAccount(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error)
	UpdatePassword(ctx context.Context, identity models.Identity, req models.UpdatePasswordRequest) error
	DeleteAccount(ctx context.Context, identity models.Identity, req models.DeleteAccountRequest) error
	GetAccountsByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error)
}

type CompanyService interface {
	CreateCompany(ctx context.Context, identity models.Identity, req models.CreateCompanyRequest) (models.Company, error)
	UpdateCompany(ctx context.Context, identity models.Identity, companyID string, update models.CompanyUpdate) (models.Company, error)
	// DeleteCompany removes the company together with its jobs and their
	// applications.
	DeleteCompany(ctx context.Context, identity models.Identity, companyID string) error
	GetCompaniesForHR(ctx context.Context, identity models.Identity) ([]models.Company, error)
	GetCompanyData(ctx context.Context, identity models.Identity, companyID string) (models.CompanyDataResponse, error)
	SearchCompaniesByName(ctx context.Context, fragment string) ([]models.Company, error)
}

type JobService interface {
	AddJob(ctx context.Context, identity models.Identity, req models.AddJobRequest) (models.Job, error)
	UpdateJob(ctx context.Context, identity models.Identity, jobID string, update models.JobUpdate) (models.Job, error)
	// DeleteJob removes the job and its applications.
	DeleteJob(ctx context.Context, identity models.Identity, jobID string) error
	GetJob(ctx context.Context, jobID string) (models.JobWithCompany, error)
	GetAllJobsWithCompanies(ctx context.Context) ([]models.JobWithCompany, error)
	GetLastJobsWithCompanies(ctx context.Context, count uint64) ([]models.JobWithCompany, error)
	GetJobsForCompany(ctx context.Context, companyID string) ([]models.Job, error)
	GetJobsForHR(ctx context.Context, identity models.Identity) ([]models.JobWithCompany, error)
	FilterJobs(ctx context.Context, filter models.JobFilter) ([]models.JobWithCompany, error)
}

type ApplicationService interface {
	ApplyForJob(ctx context.Context, identity models.Identity, jobID string, req models.ApplyRequest) (models.Application, error)
	GetApplicationsForJob(ctx context.Context, jobID string) ([]models.ApplicationExportRow, error)
	// ExportApplications renders today's applications to the jobs of an owned
	// company as a spreadsheet.
	ExportApplications(ctx context.Context, identity models.Identity, companyID string) (models.ExportFile, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
