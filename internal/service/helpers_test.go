package service

import (
	"time"

	"github.com/MKhiriev/go-job-board/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

var (
	hrIdentity    = models.Identity{ID: "hr-1", Email: "hr@example.com", Role: models.RoleCompanyHR}
	otherHR       = models.Identity{ID: "hr-2", Email: "other@example.com", Role: models.RoleCompanyHR}
	plainIdentity = models.Identity{ID: "u-1", Email: "user@example.com", Role: models.RoleUser}
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string { return &s }
