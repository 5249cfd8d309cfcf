package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-confirm/internal/logger"
	"github.com/MKhiriev/go-confirm/internal/service"
	"github.com/MKhiriev/go-confirm/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

// Page names double as route paths.
const (
	PageRoot    = models.RootPath
	PageConfirm = "/confirm"
)

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.ConfirmationService == nil {
		return nil, errNoConfirmationService
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// NewRoot builds the page router for token, opened on the confirmation page.
func (t *TUI) NewRoot(ctx context.Context, token models.Token) RootModel {
	pages := map[string]tea.Model{
		PageRoot:    NewRootPageModel(),
		PageConfirm: NewConfirmationModel(ctx, t.services.ConfirmationService, token),
	}

	return NewRootModel(pages, PageConfirm, t.buildInfo)
}

// ConfirmFlow runs the confirmation view until the user leaves it. confirmed
// reports whether the flow ended on the root page after a successful
// activation.
func (t *TUI) ConfirmFlow(ctx context.Context, token models.Token) (confirmed bool, err error) {
	finalModel, err := tea.NewProgram(t.NewRoot(ctx, token), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	t.logger.Debug().Str("page", result.CurrentPage()).Msg("confirmation flow finished")
	return result.CurrentPage() == PageRoot, nil
}
