package service

import (
	"context"

	"github.com/MKhiriev/hamkee/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService exposes what is known about the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// GreetingService produces the hello route payload.
type GreetingService interface {
	Greet(ctx context.Context) models.Greeting
}
