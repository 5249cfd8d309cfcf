package service

import (
	"fmt"

	"github.com/MKhiriev/go-confirm/internal/adapter"
	"github.com/MKhiriev/go-confirm/internal/config"
	"github.com/MKhiriev/go-confirm/internal/logger"
)

// Services aggregates the services shared by the server and the terminal
// client.
type Services struct {
	ConfirmationService ConfirmationService
	AppInfoService      AppInfoService
}

func NewServices(activationAdapter adapter.ActivationAdapter, cfg config.App, logger *logger.Logger) (*Services, error) {
	confirmationService, err := NewConfirmationService(activationAdapter, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating confirmation service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ConfirmationService: confirmationService,
		AppInfoService:      appInfoService,
	}, nil
}
