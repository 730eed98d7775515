package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addJobBody = `{
	"jobTitle": "Go Developer", "jobLocation": "remotely", "workingTime": "full-time",
	"seniorityLevel": "Senior", "jobDescription": "d", "salary": "5000",
	"technicalSkills": ["Go", "SQL"], "softSkills": ["Teamwork"], "company": "Roxanne Inc"
}`

func TestAddJob(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "created", body: addJobBody, wantStatus: http.StatusCreated},
		{name: "unknown company", body: addJobBody, err: service.ErrJobCompanyNotFound, wantStatus: http.StatusNotFound, wantMsg: "Your company doesn't exist"},
		{
			name:       "bad enums",
			body:       `{"jobTitle":"x","jobLocation":"moon","workingTime":"full-time","seniorityLevel":"Intern","jobDescription":"d","salary":"1","technicalSkills":["Go"],"softSkills":["a"],"company":"c"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    `"jobLocation" must be one of [onsite, remotely, hybrid],"seniorityLevel" must be one of [Junior, Mid-Level, Senior, Team-Lead, CTO]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.JobService = &fakeJobService{
				addJobFn: func(_ context.Context, identity models.Identity, req models.AddJobRequest) (models.Job, error) {
					if tt.err != nil {
						return models.Job{}, tt.err
					}
					return models.Job{ID: jobID, JobTitle: req.JobTitle, AddedBy: identity.ID, TechnicalSkills: req.TechnicalSkills}, nil
				},
			}

			rec := serve(t, newTestHandler(services), http.MethodPost, "/jobs/addJob", hrToken, tt.body)
			assertStatus(t, rec, tt.wantStatus)

			env := decodeEnvelope(t, rec)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, env.ErrorMsg)
			}
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "Job added successfully", env.Message)
				assert.Contains(t, string(env.Data), `"technicalSkills":["Go","SQL"]`)
			}
		})
	}
}

func TestUpdateAndDeleteJob_Ownership(t *testing.T) {
	owner := func(identity models.Identity) error {
		if identity.ID != "hr-1" {
			return service.ErrForbidden
		}
		return nil
	}

	services := newTestServices()
	services.JobService = &fakeJobService{
		updateJobFn: func(_ context.Context, identity models.Identity, id string, _ models.JobUpdate) (models.Job, error) {
			return models.Job{ID: id}, owner(identity)
		},
		deleteJobFn: func(_ context.Context, identity models.Identity, _ string) error {
			return owner(identity)
		},
	}
	h := newTestHandler(services)

	rec := serve(t, h, http.MethodPut, "/jobs/updateJob/"+jobID, hrToken, `{"salary":"6000"}`)
	assertStatus(t, rec, http.StatusOK)
	rec = serve(t, h, http.MethodPut, "/jobs/updateJob/"+jobID, userToken, `{"salary":"6000"}`)
	assertStatus(t, rec, http.StatusForbidden)

	rec = serve(t, h, http.MethodDelete, "/jobs/deleteJob/"+jobID, hrToken, "")
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, "Job deleted successfully", decodeEnvelope(t, rec).Message)
	rec = serve(t, h, http.MethodDelete, "/jobs/deleteJob/"+jobID, userToken, "")
	assertStatus(t, rec, http.StatusForbidden)
}

func TestGetJob(t *testing.T) {
	services := newTestServices()
	services.JobService = &fakeJobService{
		getJobFn: func(_ context.Context, id string) (models.JobWithCompany, error) {
			if id != jobID {
				return models.JobWithCompany{}, service.ErrJobNotFound
			}
			return models.JobWithCompany{Job: models.Job{ID: id}, Company: models.Company{CompanyEmail: "hr@roxanne.com"}}, nil
		},
	}
	h := newTestHandler(services)

	rec := serve(t, h, http.MethodGet, "/jobs/getJob/"+jobID, userToken, "")
	assertStatus(t, rec, http.StatusOK)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"companyEmail":"hr@roxanne.com"`)

	rec = serve(t, h, http.MethodGet, "/jobs/getJob/"+companyID, userToken, "")
	assertStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "Job not found", decodeEnvelope(t, rec).ErrorMsg)
}

func TestJobListings(t *testing.T) {
	services := newTestServices()
	services.JobService = &fakeJobService{
		getAllJobsWithCompaniesFn: func(context.Context) ([]models.JobWithCompany, error) {
			return []models.JobWithCompany{{}, {}, {}, {}}, nil
		},
		getLastJobsWithCompaniesFn: func(_ context.Context, count uint64) ([]models.JobWithCompany, error) {
			assert.Equal(t, uint64(3), count)
			return []models.JobWithCompany{{}, {}, {}}, nil
		},
		getJobsForCompanyFn: func(_ context.Context, id string) ([]models.Job, error) {
			assert.Equal(t, companyID, id)
			return []models.Job{{ID: jobID}}, nil
		},
		getJobsForHRFn: func(_ context.Context, identity models.Identity) ([]models.JobWithCompany, error) {
			assert.Equal(t, hrCaller, identity)
			return []models.JobWithCompany{{}}, nil
		},
	}
	h := newTestHandler(services)

	tests := []struct {
		path    string
		message string
	}{
		{"/jobs/getAllJobsWithTheirCmpanies", "All jobs retrieved successfully"},
		{"/jobs/getLastThreeJobsWithTheirCompanies", "Last three jobs retrieved successfully"},
		{"/jobs/getAllJobsForACompany/" + companyID, "All jobs retrieved successfully"},
		{"/jobs/getAllJobsForAHr", "All jobs retrieved successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, tt.path, hrToken, "")
			assertStatus(t, rec, http.StatusOK)
			assert.Equal(t, tt.message, decodeEnvelope(t, rec).Message)
		})
	}
}

func TestGetAllJobsThatMatchFilter(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		body       string
		want       models.JobFilter
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "query string",
			query:      "?workingTime=part-time&technicalSkills=Go,SQL&technicalSkills=Docker",
			want:       models.JobFilter{WorkingTime: models.PartTime, TechnicalSkills: models.Skills{"Go", "SQL", "Docker"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "json body",
			body:       `{"seniorityLevel":"CTO","softSkills":["Calm"]}`,
			want:       models.JobFilter{SeniorityLevel: models.CTO, SoftSkills: models.Skills{"Calm"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "query overrides body",
			query:      "?jobTitle=go",
			body:       `{"jobTitle":"java"}`,
			want:       models.JobFilter{JobTitle: "go"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown body key",
			body:       `{"addedBy":"hr-1"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    `"addedBy" is not allowed`,
		},
		{
			name:       "unknown query key and bad enum",
			query:      "?company=x&jobLocation=moon",
			wantStatus: http.StatusBadRequest,
			wantMsg:    `"company" is not allowed,"jobLocation" must be one of [onsite, remotely, hybrid]`,
		},
		{
			name:       "empty filter lists everything",
			want:       models.JobFilter{},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.JobFilter
			services := newTestServices()
			services.JobService = &fakeJobService{
				filterJobsFn: func(_ context.Context, filter models.JobFilter) ([]models.JobWithCompany, error) {
					got = filter
					return []models.JobWithCompany{}, nil
				},
			}

			rec := serve(t, newTestHandler(services), http.MethodGet, "/jobs/getAllJobsThatMatchFilter"+tt.query, userToken, tt.body)
			assertStatus(t, rec, tt.wantStatus)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeEnvelope(t, rec).ErrorMsg)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyForAJob(t *testing.T) {
	const body = `{"userTechSkills":["Go"],"userSoftSkills":["Calm"],"userResume":"cv.pdf"}`

	applied := map[string]bool{}
	services := newTestServices()
	services.ApplicationService = &fakeApplicationService{
		applyForJobFn: func(_ context.Context, identity models.Identity, id string, req models.ApplyRequest) (models.Application, error) {
			key := identity.ID + "/" + id
			if applied[key] {
				return models.Application{}, service.ErrAlreadyApplied
			}
			applied[key] = true
			return models.Application{ID: "a-1", JobID: id, UserID: identity.ID, UserResume: req.UserResume}, nil
		},
	}
	h := newTestHandler(services)

	rec := serve(t, h, http.MethodPost, "/jobs/applyForAJob/"+jobID, userToken, body)
	assertStatus(t, rec, http.StatusCreated)
	env := decodeEnvelope(t, rec)
	require.Equal(t, "Application submitted successfully", env.Message)
	assert.Contains(t, string(env.Data), `"userResume":"cv.pdf"`)

	rec = serve(t, h, http.MethodPost, "/jobs/applyForAJob/"+jobID, userToken, body)
	assertStatus(t, rec, http.StatusConflict)
	assert.Equal(t, "You have already applied for this job", decodeEnvelope(t, rec).ErrorMsg)
}
