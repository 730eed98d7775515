package service

import (
	"time"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/crypto"
	"github.com/MKhiriev/go-job-board/internal/events"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/MKhiriev/go-job-board/internal/store"
	"github.com/MKhiriev/go-job-board/internal/utils"
	"github.com/MKhiriev/go-job-board/models"
)

// idGenerator issues identifiers for new records.
type idGenerator interface {
	Generate() string
}

type Services struct {
	AuthService        AuthService
	UserService        UserService
	CompanyService     CompanyService
	JobService         JobService
	ApplicationService ApplicationService
	AppInfoService     AppInfoService
}

// Dependencies are the collaborators shared by all services.
type Dependencies struct {
	Storages  *store.Storages
	Cipher    crypto.FieldCipher
	Publisher events.Publisher
}

func NewServices(deps Dependencies, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	s := deps.Storages

	return &Services{
		AuthService:        NewAuthService(s.UserRepository, s.OTPStorage, ids, cfg.App, logger),
		UserService:        NewUserService(s.UserRepository, s.ApplicationRepository, cfg.App, logger),
		CompanyService:     NewCompanyService(s.CompanyRepository, s.JobRepository, s.ApplicationRepository, deps.Cipher, ids, cfg.App, logger),
		JobService:         NewJobService(s.JobRepository, s.CompanyRepository, s.ApplicationRepository, deps.Cipher, deps.Publisher, ids, logger),
		ApplicationService: NewApplicationService(s.ApplicationRepository, s.JobRepository, s.CompanyRepository, deps.Publisher, ids, logger),
		AppInfoService:     appInfoService,
	}, nil
}

// today returns the calendar day of now in the application date layout.
func today(now func() time.Time) string {
	return now().Format(models.ApplicationDateLayout)
}
