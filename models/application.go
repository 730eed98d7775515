// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ApplicationDateLayout is the calendar-day format of Application.ApplicationDate.
const ApplicationDateLayout = "2006-01-02"

// Application is a user's submission for a job. There is at most one
// application per (JobID, UserID) pair.
type Application struct {
	ID             string `json:"_id"`
	JobID          string `json:"jobId"`
	UserID         string `json:"userId"`
	UserTechSkills Skills `json:"userTechSkills"`
	UserSoftSkills Skills `json:"userSoftSkills"`
	UserResume     string `json:"userResume"`

	// ApplicationDate is the day the application was submitted (YYYY-MM-DD).
	ApplicationDate string `json:"applicationDate"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Application model.
func (a Application) TableName() string {
	return "applications"
}

// ApplyRequest is the payload of POST /jobs/applyForAJob/{jobId}.
type ApplyRequest struct {
	UserTechSkills Skills `json:"userTechSkills" validate:"required,dive,required"`
	UserSoftSkills Skills `json:"userSoftSkills" validate:"required,dive,required"`
	UserResume     string `json:"userResume" validate:"required"`
}

// Applicant holds the applicant fields joined into an export row.
type Applicant struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
}

// ApplicationExportRow is one application joined with its applicant, as
// rendered into the export spreadsheet.
type ApplicationExportRow struct {
	Application
	Applicant Applicant `json:"applicant"`
}

// ExportFile is a generated downloadable document.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
