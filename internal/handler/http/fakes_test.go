package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

type fakeAuthService struct {
	signUpFn         func(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error)
	signInFn         func(ctx context.Context, req models.SignInRequest) (models.TokenResponse, error)
	signOutFn        func(ctx context.Context, identity models.Identity) error
	authenticateFn   func(ctx context.Context, accessToken string) (models.Identity, error)
	forgetPasswordFn func(ctx context.Context, req models.ForgetPasswordRequest) error
}

func (f *fakeAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error) {
	return f.signUpFn(ctx, req)
}

func (f *fakeAuthService) SignIn(ctx context.Context, req models.SignInRequest) (models.TokenResponse, error) {
	return f.signInFn(ctx, req)
}

func (f *fakeAuthService) SignOut(ctx context.Context, identity models.Identity) error {
	return f.signOutFn(ctx, identity)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, accessToken string) (models.Identity, error) {
	if f.authenticateFn == nil {
		return tokenIdentity(accessToken)
	}
	return f.authenticateFn(ctx, accessToken)
}

func (f *fakeAuthService) ForgetPassword(ctx context.Context, req models.ForgetPasswordRequest) error {
	return f.forgetPasswordFn(ctx, req)
}

type fakeUserService struct {
	getAccountDataFn             func(ctx context.Context, identity models.Identity) (models.User, error)
	getProfileDataFn             func(ctx context.Context, userID string) (models.User, error)
	updateAccountFn              func(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error)
	updatePasswordFn             func(ctx context.Context, identity models.Identity, req models.UpdatePasswordRequest) error
	deleteAccountFn              func(ctx context.Context, identity models.Identity, req models.DeleteAccountRequest) error
	getAccountsByRecoveryEmailFn func(ctx context.Context, recoveryEmail string) ([]models.User, error)
}

func (f *fakeUserService) GetAccountData(ctx context.Context, identity models.Identity) (models.User, error) {
	return f.getAccountDataFn(ctx, identity)
}

func (f *fakeUserService) GetProfileData(ctx context.Context, userID string) (models.User, error) {
	return f.getProfileDataFn(ctx, userID)
}

func (f *fakeUserService) UpdateAccount(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error) {
	return f.updateAccountFn(ctx, identity, update)
}

func (f *fakeUserService) UpdatePassword(ctx context.Context, identity models.Identity, req models.UpdatePasswordRequest) error {
	return f.updatePasswordFn(ctx, identity, req)
}

func (f *fakeUserService) DeleteAccount(ctx context.Context, identity models.Identity, req models.DeleteAccountRequest) error {
	return f.deleteAccountFn(ctx, identity, req)
}

func (f *fakeUserService) GetAccountsByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error) {
	return f.getAccountsByRecoveryEmailFn(ctx, recoveryEmail)
}

type fakeCompanyService struct {
	createCompanyFn         func(ctx context.Context, identity models.Identity, req models.CreateCompanyRequest) (models.Company, error)
	updateCompanyFn         func(ctx context.Context, identity models.Identity, companyID string, update models.CompanyUpdate) (models.Company, error)
	deleteCompanyFn         func(ctx context.Context, identity models.Identity, companyID string) error
	getCompaniesForHRFn     func(ctx context.Context, identity models.Identity) ([]models.Company, error)
	getCompanyDataFn        func(ctx context.Context, identity models.Identity, companyID string) (models.CompanyDataResponse, error)
	searchCompaniesByNameFn func(ctx context.Context, fragment string) ([]models.Company, error)
}

func (f *fakeCompanyService) CreateCompany(ctx context.Context, identity models.Identity, req models.CreateCompanyRequest) (models.Company, error) {
	return f.createCompanyFn(ctx, identity, req)
}

func (f *fakeCompanyService) UpdateCompany(ctx context.Context, identity models.Identity, companyID string, update models.CompanyUpdate) (models.Company, error) {
	return f.updateCompanyFn(ctx, identity, companyID, update)
}

func (f *fakeCompanyService) DeleteCompany(ctx context.Context, identity models.Identity, companyID string) error {
	return f.deleteCompanyFn(ctx, identity, companyID)
}

func (f *fakeCompanyService) GetCompaniesForHR(ctx context.Context, identity models.Identity) ([]models.Company, error) {
	return f.getCompaniesForHRFn(ctx, identity)
}

func (f *fakeCompanyService) GetCompanyData(ctx context.Context, identity models.Identity, companyID string) (models.CompanyDataResponse, error) {
	return f.getCompanyDataFn(ctx, identity, companyID)
}

func (f *fakeCompanyService) SearchCompaniesByName(ctx context.Context, fragment string) ([]models.Company, error) {
	return f.searchCompaniesByNameFn(ctx, fragment)
}

type fakeJobService struct {
	addJobFn                   func(ctx context.Context, identity models.Identity, req models.AddJobRequest) (models.Job, error)
	updateJobFn                func(ctx context.Context, identity models.Identity, jobID string, update models.JobUpdate) (models.Job, error)
	deleteJobFn                func(ctx context.Context, identity models.Identity, jobID string) error
	getJobFn                   func(ctx context.Context, jobID string) (models.JobWithCompany, error)
	getAllJobsWithCompaniesFn  func(ctx context.Context) ([]models.JobWithCompany, error)
	getLastJobsWithCompaniesFn func(ctx context.Context, count uint64) ([]models.JobWithCompany, error)
	getJobsForCompanyFn        func(ctx context.Context, companyID string) ([]models.Job, error)
	getJobsForHRFn             func(ctx context.Context, identity models.Identity) ([]models.JobWithCompany, error)
	filterJobsFn               func(ctx context.Context, filter models.JobFilter) ([]models.JobWithCompany, error)
}

func (f *fakeJobService) AddJob(ctx context.Context, identity models.Identity, req models.AddJobRequest) (models.Job, error) {
	return f.addJobFn(ctx, identity, req)
}

func (f *fakeJobService) UpdateJob(ctx context.Context, identity models.Identity, jobID string, update models.JobUpdate) (models.Job, error) {
	return f.updateJobFn(ctx, identity, jobID, update)
}

func (f *fakeJobService) DeleteJob(ctx context.Context, identity models.Identity, jobID string) error {
	return f.deleteJobFn(ctx, identity, jobID)
}

func (f *fakeJobService) GetJob(ctx context.Context, jobID string) (models.JobWithCompany, error) {
	return f.getJobFn(ctx, jobID)
}

func (f *fakeJobService) GetAllJobsWithCompanies(ctx context.Context) ([]models.JobWithCompany, error) {
	return f.getAllJobsWithCompaniesFn(ctx)
}

func (f *fakeJobService) GetLastJobsWithCompanies(ctx context.Context, count uint64) ([]models.JobWithCompany, error) {
	return f.getLastJobsWithCompaniesFn(ctx, count)
}

func (f *fakeJobService) GetJobsForCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	return f.getJobsForCompanyFn(ctx, companyID)
}

func (f *fakeJobService) GetJobsForHR(ctx context.Context, identity models.Identity) ([]models.JobWithCompany, error) {
	return f.getJobsForHRFn(ctx, identity)
}

func (f *fakeJobService) FilterJobs(ctx context.Context, filter models.JobFilter) ([]models.JobWithCompany, error) {
	return f.filterJobsFn(ctx, filter)
}

type fakeApplicationService struct {
	applyForJobFn           func(ctx context.Context, identity models.Identity, jobID string, req models.ApplyRequest) (models.Application, error)
	getApplicationsForJobFn func(ctx context.Context, jobID string) ([]models.ApplicationExportRow, error)
	exportApplicationsFn    func(ctx context.Context, identity models.Identity, companyID string) (models.ExportFile, error)
}

func (f *fakeApplicationService) ApplyForJob(ctx context.Context, identity models.Identity, jobID string, req models.ApplyRequest) (models.Application, error) {
	return f.applyForJobFn(ctx, identity, jobID, req)
}

func (f *fakeApplicationService) GetApplicationsForJob(ctx context.Context, jobID string) ([]models.ApplicationExportRow, error) {
	return f.getApplicationsForJobFn(ctx, jobID)
}

func (f *fakeApplicationService) ExportApplications(ctx context.Context, identity models.Identity, companyID string) (models.ExportFile, error) {
	return f.exportApplicationsFn(ctx, identity, companyID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	hrToken   = "accesstoken__hr"
	userToken = "accesstoken__user"

	companyID = "01890a5d-ac96-774b-bcce-b302099a8057"
	jobID     = "01890a5d-ac96-774b-bcce-b302099a8058"
	userID    = "01890a5d-ac96-774b-bcce-b302099a8059"
)

var (
	hrCaller   = models.Identity{ID: "hr-1", Email: "hr@acme.com", Role: models.RoleCompanyHR}
	userCaller = models.Identity{ID: "u-1", Email: "user@acme.com", Role: models.RoleUser}
)

// tokenIdentity is the default Authenticate of fakeAuthService: two fixed
// tokens map to an HR and a plain user, anything else is rejected.
func tokenIdentity(accessToken string) (models.Identity, error) {
	switch accessToken {
	case "":
		return models.Identity{}, service.ErrAccessTokenRequired
	case hrToken:
		return hrCaller, nil
	case userToken:
		return userCaller, nil
	default:
		return models.Identity{}, service.ErrInvalidAccessToken
	}
}

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:        &fakeAuthService{},
		UserService:        &fakeUserService{},
		CompanyService:     &fakeCompanyService{},
		JobService:         &fakeJobService{},
		ApplicationService: &fakeApplicationService{},
		AppInfoService:     &fakeAppInfoService{version: "test-version"},
	}
}

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = newTestServices()
	}
	return NewHandler(services, config.Server{}, logger.Nop())
}

// serve sends one request through the full router.
func serve(t *testing.T, h *Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(accessTokenHeader, token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	ErrorMsg string          `json:"error_msg"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, rec.Body.String())
}
