// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request DTOs before they reach the services.
//
// RequestValidator drives the checks from `validate` struct tags on the
// models package types (credentials, profile updates, job and company
// payloads). All violations of one payload come back together as a
// ValidationErrors matching ErrValidation, named by the JSON tags so the
// messages match what the client sent. Handlers map ErrValidation to 400.
package validators

import "context"

// Validator is what handlers and services depend on. RequestValidator is the
// only implementation.
type Validator interface {
	// Validate checks the value and, when field names are given, only those
	// fields.
	Validate(context.Context, any, ...string) error
}
