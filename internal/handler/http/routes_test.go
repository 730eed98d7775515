package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h *Handler) *resty.Client {
	t.Helper()

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL).SetTimeout(5 * time.Second)
}

func TestRoutes_ProtectedWithoutToken(t *testing.T) {
	client := newTestServer(t, newTestHandler(nil))

	protected := []struct{ method, path string }{
		{http.MethodPatch, "/users/signOut"},
		{http.MethodPut, "/users/updateAccount"},
		{http.MethodDelete, "/users/deleteAccount"},
		{http.MethodGet, "/users/getUserAccountData"},
		{http.MethodPatch, "/users/updatePassword"},
		{http.MethodPost, "/companies/createCompany"},
		{http.MethodPut, "/companies/updateCompany/" + companyID},
		{http.MethodDelete, "/companies/deleteCompany/" + companyID},
		{http.MethodGet, "/companies/getAllCompaniesForHR"},
		{http.MethodGet, "/companies/getCompanyData/" + companyID},
		{http.MethodGet, "/companies/searchCompanyByName?companyName=a"},
		{http.MethodGet, "/companies/collectTheApplicationAndCreateExcelSheet/" + companyID},
		{http.MethodPost, "/jobs/addJob"},
		{http.MethodPut, "/jobs/updateJob/" + jobID},
		{http.MethodDelete, "/jobs/deleteJob/" + jobID},
		{http.MethodGet, "/jobs/getJob/" + jobID},
		{http.MethodGet, "/jobs/getAllJobsWithTheirCmpanies"},
		{http.MethodGet, "/jobs/getLastThreeJobsWithTheirCompanies"},
		{http.MethodGet, "/jobs/getAllJobsForACompany/" + companyID},
		{http.MethodGet, "/jobs/getAllJobsForAHr"},
		{http.MethodGet, "/jobs/getAllJobsThatMatchFilter"},
		{http.MethodPost, "/jobs/applyForAJob/" + jobID},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			var body envelope
			resp, err := client.R().SetResult(&body).SetError(&body).Execute(route.method, route.path)
			require.NoError(t, err)

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode(), resp.String())
			assert.Equal(t, "Access token is required", body.ErrorMsg)
		})
	}
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	services := newTestServices()
	services.UserService = &fakeUserService{
		getProfileDataFn: func(_ context.Context, id string) (models.User, error) {
			return models.User{ID: id}, nil
		},
		getAccountsByRecoveryEmailFn: func(context.Context, string) ([]models.User, error) {
			return []models.User{}, nil
		},
	}
	services.ApplicationService = &fakeApplicationService{
		getApplicationsForJobFn: func(context.Context, string) ([]models.ApplicationExportRow, error) {
			return []models.ApplicationExportRow{}, nil
		},
	}
	client := newTestServer(t, newTestHandler(services))

	for _, path := range []string{
		"/users/getProfileData/" + userID,
		"/users/getAccountsByRecoveryEmail?recoveryEmail=r@example.com",
		"/companies/getApplicationsForJobs/" + jobID,
	} {
		t.Run(path, func(t *testing.T) {
			var body envelope
			resp, err := client.R().SetResult(&body).Get(path)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
			assert.True(t, body.Success)
		})
	}
}

func TestRoutes_Version(t *testing.T) {
	client := newTestServer(t, newTestHandler(nil))

	resp, err := client.R().Get("/api/version")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "test-version", resp.String())
	assert.NotEmpty(t, resp.Header().Get(traceIDHeader))
}

func TestRoutes_TraceIDRoundTrip(t *testing.T) {
	client := newTestServer(t, newTestHandler(nil))

	resp, err := client.R().SetHeader(traceIDHeader, "abc-123").Get("/nowhere")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.Equal(t, "abc-123", resp.Header().Get(traceIDHeader))
}

func TestRoutes_CORSPreflight(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantOrigin string
	}{
		{name: "any origin by default", origin: "https://jobs.example.com", wantOrigin: "*"},
		{name: "configured origin", origins: []string{"https://jobs.example.com"}, origin: "https://jobs.example.com", wantOrigin: "https://jobs.example.com"},
		{name: "foreign origin", origins: []string{"https://jobs.example.com"}, origin: "https://evil.example.com", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(newTestServices(), config.Server{CORSOrigins: tt.origins}, logger.Nop())
			client := newTestServer(t, h)

			resp, err := client.R().
				SetHeader("Origin", tt.origin).
				SetHeader("Access-Control-Request-Method", http.MethodPost).
				SetHeader("Access-Control-Request-Headers", accessTokenHeader).
				Options("/jobs/addJob")
			require.NoError(t, err)

			assert.Equal(t, tt.wantOrigin, resp.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRoutes_RequestTimeout(t *testing.T) {
	services := newTestServices()
	services.JobService = &fakeJobService{
		getAllJobsWithCompaniesFn: func(ctx context.Context) ([]models.JobWithCompany, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	h := NewHandler(services, config.Server{RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	client := newTestServer(t, h)

	resp, err := client.R().SetHeader(accessTokenHeader, userToken).Get("/jobs/getAllJobsWithTheirCmpanies")
	require.NoError(t, err)

	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode())
}
