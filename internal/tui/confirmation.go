// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-confirm/internal/service"
	"github.com/MKhiriev/go-confirm/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// copyToClipboard is replaced in tests, where no clipboard is available.
var copyToClipboard = clipboard.WriteAll

// ConfirmationModel is the terminal confirmation view. Each enter press runs
// one confirmation as a tea.Cmd; presses are not debounced and the control
// is never disabled.
type ConfirmationModel struct {
	ctx     context.Context
	service service.ConfirmationService
	token   models.Token

	notice *noticeOverlay
	status string
}

func NewConfirmationModel(ctx context.Context, confirmationService service.ConfirmationService, token models.Token) *ConfirmationModel {
	return &ConfirmationModel{
		ctx:     ctx,
		service: confirmationService,
		token:   token,
	}
}

func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case confirmDoneMsg:
		if msg.outcome.IsRedirect() {
			target := msg.outcome.To
			return m, func() tea.Msg { return NavigateTo{Page: target} }
		}
		m.notice = &noticeOverlay{message: msg.outcome.Message}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Activation URL copied"
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ConfirmationModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// the notice blocks the view until dismissed
	if m.notice != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.notice = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		return m, m.confirmCmd()
	case key.Matches(msg, keys.copy):
		return m, m.copyCmd()
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *ConfirmationModel) confirmCmd() tea.Cmd {
	ctx, svc, token := m.ctx, m.service, m.token
	return func() tea.Msg {
		return confirmDoneMsg{outcome: svc.Confirm(ctx, token)}
	}
}

func (m *ConfirmationModel) copyCmd() tea.Cmd {
	activationURL := m.service.ActivationURL(m.token)
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(activationURL)}
	}
}

func (m *ConfirmationModel) overlayOpen() bool {
	return m.notice != nil
}

func (m *ConfirmationModel) View() string {
	if m.notice != nil {
		return m.notice.View()
	}

	var b strings.Builder
	b.WriteString(buttonStyle.Render("Click to confirm"))
	b.WriteString("\n\nToken: ")
	b.WriteString(m.token.String())
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("Confirmation", b.String(), "enter: confirm │ c: copy activation URL │ v: version │ q: quit")
}
