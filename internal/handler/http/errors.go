// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when the request body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRouteNotFound answers unknown paths and unsupported methods alike.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMissingIdentity means a protected handler ran without the auth
	// middleware in front of it.
	ErrMissingIdentity = errors.New("no authenticated user in request")
)

// genericErrorMessage is the envelope message of every error response and
// the detail of unexpected ones.
const genericErrorMessage = "Something went wrong"
