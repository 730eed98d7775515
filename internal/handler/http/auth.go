package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := h.parse(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", resp.User.ID).Msg("user signed up")
	respond(w, r, http.StatusCreated, "User Created Successfully", resp)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := h.parse(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignIn(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Login successful", token)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.SignOut(r.Context(), caller); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "User Signed Out Successfully", nil)
}

func (h *Handler) forgetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgetPasswordRequest
	if err := h.parse(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ForgetPassword(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, "Password Updated Successfully", nil)
}
