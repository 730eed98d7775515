package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
)

const lastJobsCount = 3

// jobFilterKeys are the query keys accepted by the job filter.
var jobFilterKeys = []string{
	"jobTitle", "jobLocation", "workingTime", "seniorityLevel",
	"salary", "technicalSkills", "softSkills",
}

func (h *Handler) addJob(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AddJobRequest
	if err = h.parse(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.JobService.AddJob(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, "Job added successfully", job)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	params := jobIDParams(r)
	var update models.JobUpdate
	if err = h.parse(r, &update, &params); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.JobService.UpdateJob(r.Context(), caller, params.JobID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Job updated successfully", job)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	params := jobIDParams(r)
	if err = h.parse(r, nil, &params); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.JobService.DeleteJob(r.Context(), caller, params.JobID); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Job deleted successfully", nil)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	params := jobIDParams(r)
	if err := h.parse(r, nil, &params); err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.JobService.GetJob(r.Context(), params.JobID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Job retrieved successfully", job)
}

func (h *Handler) getAllJobsWithTheirCompanies(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.services.JobService.GetAllJobsWithCompanies(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "All jobs retrieved successfully", jobs)
}

func (h *Handler) getLastThreeJobsWithTheirCompanies(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.services.JobService.GetLastJobsWithCompanies(r.Context(), lastJobsCount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Last three jobs retrieved successfully", jobs)
}

func (h *Handler) getAllJobsForACompany(w http.ResponseWriter, r *http.Request) {
	params := companyIDParams(r)
	if err := h.parse(r, nil, &params); err != nil {
		writeError(w, r, err)
		return
	}

	jobs, err := h.services.JobService.GetJobsForCompany(r.Context(), params.CompanyID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "All jobs retrieved successfully", jobs)
}

func (h *Handler) getAllJobsForAHr(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	jobs, err := h.services.JobService.GetJobsForHR(r.Context(), caller)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "All jobs retrieved successfully", jobs)
}

func (h *Handler) getAllJobsThatMatchFilter(w http.ResponseWriter, r *http.Request) {
	filter, err := h.jobFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	jobs, err := h.services.JobService.FilterJobs(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "All jobs retrieved successfully", jobs)
}

func (h *Handler) applyForAJob(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	params := jobIDParams(r)
	var req models.ApplyRequest
	if err = h.parse(r, &req, &params); err != nil {
		writeError(w, r, err)
		return
	}

	application, err := h.services.ApplicationService.ApplyForJob(r.Context(), caller, params.JobID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, "Application submitted successfully", application)
}

// jobFilter reads the filter from an optional JSON body and from the query
// string. Query values win over body values. Skill lists may be repeated or
// comma separated.
func (h *Handler) jobFilter(r *http.Request) (models.JobFilter, error) {
	var filter models.JobFilter
	var errs []error

	if r.ContentLength != 0 {
		err := decodeJSON(r, &filter)
		if err != nil && !errors.Is(err, validators.ErrValidation) {
			return models.JobFilter{}, err
		}
		errs = append(errs, err)
	}

	query := r.URL.Query()
	errs = append(errs, checkQueryKeys(query, jobFilterKeys...))

	setString(&filter.JobTitle, query.Get("jobTitle"))
	setString(&filter.Salary, query.Get("salary"))
	if v := query.Get("jobLocation"); v != "" {
		filter.JobLocation = models.JobLocation(v)
	}
	if v := query.Get("workingTime"); v != "" {
		filter.WorkingTime = models.WorkingTime(v)
	}
	if v := query.Get("seniorityLevel"); v != "" {
		filter.SeniorityLevel = models.SeniorityLevel(v)
	}
	if skills := splitList(query["technicalSkills"]); len(skills) > 0 {
		filter.TechnicalSkills = skills
	}
	if skills := splitList(query["softSkills"]); len(skills) > 0 {
		filter.SoftSkills = skills
	}

	errs = append(errs, h.validator.Validate(r.Context(), &filter))
	if err := validators.Join(errs...); err != nil {
		return models.JobFilter{}, err
	}

	return filter, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func splitList(values []string) models.Skills {
	var out models.Skills
	for _, v := range values {
		for item := range strings.SplitSeq(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
