package service

import (
	"context"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
)

// appInfoService reports build metadata of the running server.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService fails when no version is configured; config defaults set
// "dev" so this only happens with a hand-built config.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
