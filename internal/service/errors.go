// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Authentication.
var (
	ErrAccessTokenRequired = errors.New("Access token is required")
	ErrInvalidAccessToken  = errors.New("Invalid access token")
	ErrIdentityNotFound    = errors.New("User is not found in the database")
	ErrInvalidPassword     = errors.New("Invalid password")
	ErrInvalidOTP          = errors.New("Invalid OTP")
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Authorization.
var (
	ErrForbidden = errors.New("You are not allowed to perform this action")
)

// Lookups and conflicts.
var (
	ErrUserNotFound         = errors.New("User is not found")
	ErrUserAlreadyExists    = errors.New("User with this username, email or mobile number already exists")
	ErrUserHasDependents    = errors.New("Delete your companies and jobs before deleting the account")
	ErrCompanyNotFound      = errors.New("Company not found")
	ErrJobCompanyNotFound   = errors.New("Your company doesn't exist")
	ErrCompanyAlreadyExists = errors.New("Company with this name or email already exists")
	ErrJobNotFound          = errors.New("Job not found")
	ErrAlreadyApplied       = errors.New("You have already applied for this job")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
