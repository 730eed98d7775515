// Package events publishes domain events of the job board to NATS.
package events

//go:generate mockgen -source=events.go -destination=../mock/events_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-board/models"
)

const (
	JobCreatedSubject           = "jobs.created"
	ApplicationSubmittedSubject = "applications.submitted"
)

// Publisher emits events after successful writes.
type Publisher interface {
	PublishJobCreated(ctx context.Context, job models.Job) error
	PublishApplicationSubmitted(ctx context.Context, application models.Application) error
	Close()
}

// JobCreatedEvent is the payload of [JobCreatedSubject].
type JobCreatedEvent struct {
	JobID      string    `json:"jobId"`
	JobTitle   string    `json:"jobTitle"`
	CompanyID  string    `json:"companyId"`
	AddedBy    string    `json:"addedBy"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ApplicationSubmittedEvent is the payload of [ApplicationSubmittedSubject].
type ApplicationSubmittedEvent struct {
	ApplicationID   string    `json:"applicationId"`
	JobID           string    `json:"jobId"`
	UserID          string    `json:"userId"`
	ApplicationDate string    `json:"applicationDate"`
	OccurredAt      time.Time `json:"occurredAt"`
}

func newJobCreatedEvent(job models.Job, now time.Time) JobCreatedEvent {
	return JobCreatedEvent{
		JobID:      job.ID,
		JobTitle:   job.JobTitle,
		CompanyID:  job.Company,
		AddedBy:    job.AddedBy,
		OccurredAt: now.UTC(),
	}
}

func newApplicationSubmittedEvent(application models.Application, now time.Time) ApplicationSubmittedEvent {
	return ApplicationSubmittedEvent{
		ApplicationID:   application.ID,
		JobID:           application.JobID,
		UserID:          application.UserID,
		ApplicationDate: application.ApplicationDate,
		OccurredAt:      now.UTC(),
	}
}

type nopPublisher struct{}

// NewNopPublisher returns a [Publisher] that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishJobCreated(context.Context, models.Job) error { return nil }

func (nopPublisher) PublishApplicationSubmitted(context.Context, models.Application) error {
	return nil
}

func (nopPublisher) Close() {}
