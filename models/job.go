package models

import "time"

// JobLocation is the work-place mode of a job.
type JobLocation string

const (
	LocationOnsite   JobLocation = "onsite"
	LocationRemotely JobLocation = "remotely"
	LocationHybrid   JobLocation = "hybrid"
)

// WorkingTime is the schedule of a job.
type WorkingTime string

const (
	PartTime WorkingTime = "part-time"
	FullTime WorkingTime = "full-time"
)

// SeniorityLevel is the experience level a job targets.
type SeniorityLevel string

const (
	Junior   SeniorityLevel = "Junior"
	MidLevel SeniorityLevel = "Mid-Level"
	Senior   SeniorityLevel = "Senior"
	TeamLead SeniorityLevel = "Team-Lead"
	CTO      SeniorityLevel = "CTO"
)

// Job is a vacancy published by an HR user on behalf of a company.
type Job struct {
	ID              string         `json:"_id"`
	JobTitle        string         `json:"jobTitle"`
	JobLocation     JobLocation    `json:"jobLocation"`
	WorkingTime     WorkingTime    `json:"workingTime"`
	SeniorityLevel  SeniorityLevel `json:"seniorityLevel"`
	JobDescription  string         `json:"jobDescription"`
	Salary          string         `json:"salary"`
	TechnicalSkills Skills         `json:"technicalSkills"`
	SoftSkills      Skills         `json:"softSkills"`

	// AddedBy is the ID of the HR user that created the job.
	AddedBy string `json:"addedBy"`

	// Company is the ID of the owning company.
	Company string `json:"company"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Job model.
func (j Job) TableName() string {
	return "jobs"
}

// JobWithCompany is a job joined with its owning company. Listing endpoints
// fill only the company ID and name.
type JobWithCompany struct {
	Job
	Company Company `json:"company"`
}

// AddJobRequest is the payload of POST /jobs/addJob. Company is the name of
// the company the job is posted for.
type AddJobRequest struct {
	JobTitle        string         `json:"jobTitle" validate:"required"`
	JobLocation     JobLocation    `json:"jobLocation" validate:"required,oneof=onsite remotely hybrid"`
	WorkingTime     WorkingTime    `json:"workingTime" validate:"required,oneof=part-time full-time"`
	SeniorityLevel  SeniorityLevel `json:"seniorityLevel" validate:"required,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string         `json:"jobDescription" validate:"required"`
	Salary          string         `json:"salary" validate:"required"`
	TechnicalSkills Skills         `json:"technicalSkills" validate:"required,dive,required"`
	SoftSkills      Skills         `json:"softSkills" validate:"required,dive,required"`
	Company         string         `json:"company" validate:"required"`
}

// JobUpdate carries the optional fields of PUT /jobs/updateJob.
type JobUpdate struct {
	JobTitle        *string         `json:"jobTitle,omitempty" validate:"omitempty,min=1"`
	JobLocation     *JobLocation    `json:"jobLocation,omitempty" validate:"omitempty,oneof=onsite remotely hybrid"`
	WorkingTime     *WorkingTime    `json:"workingTime,omitempty" validate:"omitempty,oneof=part-time full-time"`
	SeniorityLevel  *SeniorityLevel `json:"seniorityLevel,omitempty" validate:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  *string         `json:"jobDescription,omitempty" validate:"omitempty,min=1"`
	Salary          *string         `json:"salary,omitempty" validate:"omitempty,min=1"`
	TechnicalSkills *Skills         `json:"technicalSkills,omitempty" validate:"omitempty,dive,required"`
	SoftSkills      *Skills         `json:"softSkills,omitempty" validate:"omitempty,dive,required"`
}

// IsEmpty reports whether no field is set.
func (u JobUpdate) IsEmpty() bool {
	return u.JobTitle == nil && u.JobLocation == nil && u.WorkingTime == nil &&
		u.SeniorityLevel == nil && u.JobDescription == nil && u.Salary == nil &&
		u.TechnicalSkills == nil && u.SoftSkills == nil
}

// JobFilter is the allow-listed set of criteria accepted by
// GET /jobs/getAllJobsThatMatchFilter. Empty fields do not filter.
// Skill lists match jobs that require all of the given skills.
type JobFilter struct {
	JobTitle        string         `json:"jobTitle,omitempty"`
	JobLocation     JobLocation    `json:"jobLocation,omitempty" validate:"omitempty,oneof=onsite remotely hybrid"`
	WorkingTime     WorkingTime    `json:"workingTime,omitempty" validate:"omitempty,oneof=part-time full-time"`
	SeniorityLevel  SeniorityLevel `json:"seniorityLevel,omitempty" validate:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	Salary          string         `json:"salary,omitempty"`
	TechnicalSkills Skills         `json:"technicalSkills,omitempty" validate:"omitempty,dive,required"`
	SoftSkills      Skills         `json:"softSkills,omitempty" validate:"omitempty,dive,required"`
}

// JobIDParams holds the path parameters of job endpoints.
type JobIDParams struct {
	JobID string `json:"jobId" validate:"required,uuid"`
}
