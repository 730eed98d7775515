package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/models"
	"github.com/go-chi/chi/v5"
)

type companiesData struct {
	Companies []models.Company `json:"companies"`
}

type applicationsData struct {
	Applications []models.ApplicationExportRow `json:"applications"`
}

func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateCompanyRequest
	if err = h.parse(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	company, err := h.services.CompanyService.CreateCompany(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, "Company created successfully", company)
}

func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	params := companyIDParams(r)
	var update models.CompanyUpdate
	if err = h.parse(r, &update, &params); err != nil {
		writeError(w, r, err)
		return
	}

	company, err := h.services.CompanyService.UpdateCompany(r.Context(), caller, params.CompanyID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Company updated successfully", company)
}

func (h *Handler) deleteCompany(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	params := companyIDParams(r)
	if err = h.parse(r, nil, &params); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CompanyService.DeleteCompany(r.Context(), caller, params.CompanyID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("company_id", params.CompanyID).Msg("company deleted")
	respond(w, r, http.StatusOK, "Company deleted successfully", nil)
}

func (h *Handler) getAllCompaniesForHR(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	companies, err := h.services.CompanyService.GetCompaniesForHR(r.Context(), caller)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Companies retrieved successfully", companiesData{Companies: companies})
}

func (h *Handler) getCompanyData(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	params := companyIDParams(r)
	if err = h.parse(r, nil, &params); err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.services.CompanyService.GetCompanyData(r.Context(), caller, params.CompanyID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Company data retrieved successfully", data)
}

func (h *Handler) searchCompanyByName(w http.ResponseWriter, r *http.Request) {
	query := models.CompanySearchQuery{CompanyName: r.URL.Query().Get("companyName")}
	if err := h.parseQuery(r, &query, "companyName"); err != nil {
		writeError(w, r, err)
		return
	}

	companies, err := h.services.CompanyService.SearchCompaniesByName(r.Context(), query.CompanyName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Companies retrieved successfully", companiesData{Companies: companies})
}

func (h *Handler) getApplicationsForJob(w http.ResponseWriter, r *http.Request) {
	params := jobIDParams(r)
	if err := h.parse(r, nil, &params); err != nil {
		writeError(w, r, err)
		return
	}

	applications, err := h.services.ApplicationService.GetApplicationsForJob(r.Context(), params.JobID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Applications retrieved successfully", applicationsData{Applications: applications})
}

// exportApplications answers with today's applications to the company's
// jobs as an xlsx attachment.
func (h *Handler) exportApplications(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	params := companyIDParams(r)
	if err = h.parse(r, nil, &params); err != nil {
		writeError(w, r, err)
		return
	}

	file, err := h.services.ApplicationService.ExportApplications(r.Context(), caller, params.CompanyID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteAttachment(w, file, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.exportApplications").Msg("error writing export")
	}
}

func companyIDParams(r *http.Request) models.CompanyIDParams {
	return models.CompanyIDParams{CompanyID: chi.URLParam(r, "companyId")}
}

func jobIDParams(r *http.Request) models.JobIDParams {
	return models.JobIDParams{JobID: chi.URLParam(r, "jobId")}
}
