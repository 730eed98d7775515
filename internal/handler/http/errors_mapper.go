package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/service"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is matched in order: client errors and the request deadline
// come before the generic store failures they may be wrapped together with.
var errorStatuses = []errorStatus{
	{service.ErrAccessTokenRequired, http.StatusUnauthorized},
	{service.ErrInvalidAccessToken, http.StatusUnauthorized},
	{service.ErrIdentityNotFound, http.StatusNotFound},
	{service.ErrInvalidPassword, http.StatusUnauthorized},
	{service.ErrInvalidOTP, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrUserAlreadyExists, http.StatusConflict},
	{service.ErrUserHasDependents, http.StatusConflict},
	{service.ErrCompanyNotFound, http.StatusNotFound},
	{service.ErrJobCompanyNotFound, http.StatusNotFound},
	{service.ErrCompanyAlreadyExists, http.StatusConflict},
	{service.ErrJobNotFound, http.StatusNotFound},
	{service.ErrAlreadyApplied, http.StatusConflict},

	{validators.ErrValidation, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrRouteNotFound, http.StatusNotFound},
	{ErrMissingIdentity, http.StatusUnauthorized},

	{store.ErrUserAlreadyExists, http.StatusConflict},
	{store.ErrCompanyAlreadyExists, http.StatusConflict},
	{store.ErrApplicationAlreadyExists, http.StatusConflict},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{store.ErrCache, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the error envelope. Details of unexpected
// failures stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	detail := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("request failed")
		detail = genericErrorMessage
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, err = utils.WriteJSON(w, models.ErrorResponse{Message: genericErrorMessage, ErrorMsg: detail}, status); err != nil {
		log.Err(err).Str("func", "writeError").Msg("error writing error response")
	}
}

// respond renders the success envelope.
func respond(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	body := models.Response{Success: true, Message: message, Data: data}
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "respond").Msg("error writing response")
	}
}
