package service

import (
	"context"

	"github.com/MKhiriev/hamkee/internal/logger"
	"github.com/MKhiriev/hamkee/models"
)

const helloMessage = "Hello World"

type greetingService struct {
	logger *logger.Logger
}

func NewGreetingService(logger *logger.Logger) GreetingService {
	return &greetingService{logger: logger}
}

func (s *greetingService) Greet(ctx context.Context) models.Greeting {
	return models.Greeting{Message: helloMessage}
}
