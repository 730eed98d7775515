package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-board/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// FindUserByLogin matches login against the username or the mobile number.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUsersByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateStatus(ctx context.Context, userID string, status models.UserStatus) error
	DeleteUser(ctx context.Context, userID string) error
}

// OTPStorage keeps the hashed password recovery code of a user.
type OTPStorage interface {
	SaveOTP(ctx context.Context, userID, otpHash string, ttl time.Duration) error
	// ConsumeOTP atomically checks and clears the code. It returns
	// ErrInvalidOTP when the hash does not match or the code has expired.
	ConsumeOTP(ctx context.Context, userID, otpHash string) error
}

// CompanyRepository persists companies.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company models.Company) (models.Company, error)
	FindCompanyByID(ctx context.Context, companyID string) (models.Company, error)
	FindCompanyByName(ctx context.Context, name string) (models.Company, error)
	FindCompaniesByHR(ctx context.Context, hrID string) ([]models.Company, error)
	SearchCompaniesByName(ctx context.Context, fragment string) ([]models.Company, error)
	UpdateCompany(ctx context.Context, companyID string, update models.CompanyUpdate) (models.Company, error)
	DeleteCompany(ctx context.Context, companyID string) error
}

// JobRepository persists jobs.
type JobRepository interface {
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	FindJobByID(ctx context.Context, jobID string) (models.Job, error)
	// FindJobWithCompany joins the full owning company.
	FindJobWithCompany(ctx context.Context, jobID string) (models.JobWithCompany, error)
	// FindJobsWithCompanyNames lists jobs newest first with the company id and
	// name filled. A limit of zero means no limit.
	FindJobsWithCompanyNames(ctx context.Context, limit uint64) ([]models.JobWithCompany, error)
	FindJobsByCompany(ctx context.Context, companyID string) ([]models.Job, error)
	FindJobsByHR(ctx context.Context, hrID string) ([]models.JobWithCompany, error)
	FilterJobs(ctx context.Context, filter models.JobFilter) ([]models.JobWithCompany, error)
	UpdateJob(ctx context.Context, jobID string, update models.JobUpdate) (models.Job, error)
	DeleteJob(ctx context.Context, jobID string) error
	DeleteJobsByCompany(ctx context.Context, companyID string) error
}

// ApplicationRepository persists job applications.
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, application models.Application) (models.Application, error)
	FindApplicationsByJob(ctx context.Context, jobID string) ([]models.ApplicationExportRow, error)
	// FindApplicationsForExport returns the applications submitted on date to
	// any of jobIDs, joined with the applicant.
	FindApplicationsForExport(ctx context.Context, jobIDs []string, date string) ([]models.ApplicationExportRow, error)
	DeleteApplicationsByJob(ctx context.Context, jobID string) error
	DeleteApplicationsByCompany(ctx context.Context, companyID string) error
	DeleteApplicationsByUser(ctx context.Context, userID string) error
}
