package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-confirm/internal/config"
	"github.com/MKhiriev/go-confirm/internal/logger"
	"github.com/MKhiriev/go-confirm/internal/tui"
	"github.com/MKhiriev/go-confirm/models"
)

var ErrNoToken = errors.New("confirmation link carries no token")

// ConfirmationUI runs the interactive confirmation flow for one token.
type ConfirmationUI interface {
	ConfirmFlow(ctx context.Context, token models.Token) (confirmed bool, err error)
}

type App struct {
	ui   ConfirmationUI
	link string

	logger *logger.Logger
}

func NewApp(ui ConfirmationUI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("ui is not provided")
	}

	return &App{
		ui:     ui,
		link:   cfg.Link,
		logger: logger,
	}, nil
}

func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	token := models.TokenFromLink(a.link)
	if token == "" {
		return fmt.Errorf("%w: %q", ErrNoToken, a.link)
	}

	a.logger.Info().Str("token", token.String()).Msg("opening confirmation view")

	confirmed, err := a.ui.ConfirmFlow(ctx, token)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("confirmation flow: %w", err)
	}

	a.logger.Info().Bool("confirmed", confirmed).Msg("confirmation flow finished")
	return nil
}
