package service

import (
	"context"

	"github.com/MKhiriev/hamkee/internal/config"
	"github.com/MKhiriev/hamkee/internal/logger"
	"github.com/MKhiriev/hamkee/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService snapshots project name, version and environment from
// settings together with the build metadata.
func NewAppInfoService(settings *config.Settings, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if settings.ProjectVersion == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if settings.ProjectName == "" {
		return nil, ErrProjectNameIsNotSpecified
	}

	return &appInfoService{
		info: models.AppInfo{
			Name:         settings.ProjectName,
			Version:      settings.ProjectVersion,
			Environment:  settings.Environment.String(),
			BuildVersion: build.BuildVersion(),
			BuildDate:    build.BuildDate(),
			BuildCommit:  build.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
