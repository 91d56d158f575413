package service

import (
	"fmt"

	"github.com/MKhiriev/hamkee/internal/config"
	"github.com/MKhiriev/hamkee/internal/logger"
	"github.com/MKhiriev/hamkee/models"
)

type Services struct {
	AppInfoService  AppInfoService
	GreetingService GreetingService
}

func NewServices(settings *config.Settings, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(settings, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AppInfoService:  appInfo,
		GreetingService: NewGreetingService(logger),
	}, nil
}
