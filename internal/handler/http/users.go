package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-board/models"
	"github.com/go-chi/chi/v5"
)

type userData struct {
	User models.User `json:"user"`
}

type usersData struct {
	Users []models.User `json:"users"`
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = h.parse(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateAccount(r.Context(), caller, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "User Updated Successfully", userData{User: user})
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.DeleteAccountRequest
	if err = h.parse(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteAccount(r.Context(), caller, req); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "User Deleted Successfully", nil)
}

func (h *Handler) getUserAccountData(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetAccountData(r.Context(), caller)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "User Data Fetched Successfully", userData{User: user})
}

func (h *Handler) getProfileData(w http.ResponseWriter, r *http.Request) {
	params := models.UserIDParams{UserID: chi.URLParam(r, "userId")}
	if err := h.parse(r, nil, &params); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetProfileData(r.Context(), params.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "User Data Fetched Successfully", userData{User: user})
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdatePasswordRequest
	if err = h.parse(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.UpdatePassword(r.Context(), caller, req); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Password Updated Successfully", nil)
}

func (h *Handler) getAccountsByRecoveryEmail(w http.ResponseWriter, r *http.Request) {
	query := models.RecoveryEmailQuery{RecoveryEmail: r.URL.Query().Get("recoveryEmail")}
	if err := h.parseQuery(r, &query, "recoveryEmail"); err != nil {
		writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.GetAccountsByRecoveryEmail(r.Context(), query.RecoveryEmail)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Users Data Fetched Successfully", usersData{Users: users})
}
