package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/internal/validators"
	"github.com/MKhiriev/go-job-board/models"
)

// parse decodes the JSON body into body, when body is non-nil, and validates
// it together with the other request parts. Violations from all parts are
// reported at once.
func (h *Handler) parse(r *http.Request, body any, parts ...any) error {
	ctx := r.Context()
	var errs []error

	if body != nil {
		err := decodeJSON(r, body)
		switch {
		case err == nil:
			errs = append(errs, h.validator.Validate(ctx, body))
		case errors.Is(err, validators.ErrValidation):
			errs = append(errs, err)
		default:
			return err
		}
	}

	for _, part := range parts {
		errs = append(errs, h.validator.Validate(ctx, part))
	}

	return validators.Join(errs...)
}

// decodeJSON decodes a single JSON object and rejects fields the target does
// not declare.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return validators.Invalid("request body is required")
	case errors.As(err, &typeErr):
		return validators.Invalid(fmt.Sprintf("%q must be a %s", typeErr.Field, jsonKind(typeErr.Type.Kind().String())))
	}

	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return validators.Invalid(field + " is not allowed")
	}

	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

func jsonKind(goKind string) string {
	switch {
	case strings.HasPrefix(goKind, "int"), strings.HasPrefix(goKind, "uint"), strings.HasPrefix(goKind, "float"):
		return "number"
	case goKind == "slice":
		return "array"
	case goKind == "bool":
		return "boolean"
	default:
		return goKind
	}
}

// checkQueryKeys reports every query key outside allowed.
func checkQueryKeys(values url.Values, allowed ...string) error {
	var violations validators.ValidationErrors
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if !slices.Contains(allowed, key) {
			violations = append(violations, fmt.Sprintf("%q is not allowed", key))
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return violations
}

// identity returns the caller attached by the auth middleware.
func identity(r *http.Request) (models.Identity, error) {
	id, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrMissingIdentity
	}
	return id, nil
}

// parseQuery validates a query struct and rejects query keys outside
// allowed.
func (h *Handler) parseQuery(r *http.Request, query any, allowed ...string) error {
	return validators.Join(
		checkQueryKeys(r.URL.Query(), allowed...),
		h.validator.Validate(r.Context(), query),
	)
}
