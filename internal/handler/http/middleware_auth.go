package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-board/internal/utils"
)

// accessTokenHeader carries "accesstoken__<jwt>".
const accessTokenHeader = "accesstoken"

// auth resolves the accesstoken header to the calling user and stores the
// identity in the request context. Requests without a valid token, or whose
// user no longer exists, are answered with the error envelope and never
// reach next.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity, err := h.services.AuthService.Authenticate(ctx, r.Header.Get(accessTokenHeader))
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
