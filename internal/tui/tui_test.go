package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-confirm/internal/logger"
	"github.com/MKhiriev/go-confirm/internal/mock"
	"github.com/MKhiriev/go-confirm/internal/service"
	"github.com/MKhiriev/go-confirm/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestRoot(t *testing.T, token models.Token) (RootModel, *mock.MockConfirmationService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockConfirmationService(ctrl)

	ui, err := New(&service.Services{ConfirmationService: svc}, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc"), logger.Nop())
	require.NoError(t, err)

	return ui.NewRoot(context.Background(), token), svc
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := copyToClipboard
	copyToClipboard = fn
	t.Cleanup(func() { copyToClipboard = orig })
}

// step feeds msg to the model and returns the message produced by the
// resulting command, if any.
func step(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	if cmd == nil {
		return next, nil
	}
	return next, cmd()
}

func TestNew_NoService(t *testing.T) {
	ui, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.Nil(t, ui)
	assert.ErrorIs(t, err, errNoConfirmationService)

	ui, err = New(&service.Services{}, models.AppBuildInfo{}, logger.Nop())
	assert.Nil(t, ui)
	assert.ErrorIs(t, err, errNoConfirmationService)
}

func TestConfirmFlow_StartsOnConfirmationPage(t *testing.T) {
	root, _ := newTestRoot(t, "abc123")

	assert.Equal(t, PageConfirm, root.CurrentPage())
	view := root.View()
	assert.Contains(t, view, "Confirmation")
	assert.Contains(t, view, "Click to confirm")
	assert.Contains(t, view, "abc123")
}

func TestConfirmFlow_SuccessNavigatesToRoot(t *testing.T) {
	root, svc := newTestRoot(t, "abc123")
	svc.EXPECT().Confirm(gomock.Any(), models.Token("abc123")).Return(models.Redirect("/")).Times(1)

	m, msg := step(t, root, press("enter"))
	require.IsType(t, confirmDoneMsg{}, msg)

	m, msg = step(t, m, msg)
	require.Equal(t, NavigateTo{Page: "/"}, msg)

	m, _ = step(t, m, msg)

	result := m.(RootModel)
	assert.Equal(t, PageRoot, result.CurrentPage())
	assert.Contains(t, result.View(), "Welcome")
	assert.NotContains(t, result.View(), "Failed to confirm token")
}

func TestConfirmFlow_FailureShowsBlockingNotice(t *testing.T) {
	root, svc := newTestRoot(t, "expired-token")
	svc.EXPECT().Confirm(gomock.Any(), models.Token("expired-token")).Return(models.Notice("Failed to confirm token")).Times(1)

	m, msg := step(t, root, press("enter"))
	m, msg = step(t, m, msg)
	assert.Nil(t, msg, "a notice must not navigate")

	result := m.(RootModel)
	assert.Equal(t, PageConfirm, result.CurrentPage())
	assert.Contains(t, result.View(), "Failed to confirm token")

	// blocked: enter closes the notice instead of confirming again
	m, msg = step(t, m, press("v"))
	assert.Nil(t, msg)
	assert.Contains(t, m.View(), "Failed to confirm token")

	m, msg = step(t, m, press("enter"))
	assert.Nil(t, msg)
	assert.NotContains(t, m.View(), "Failed to confirm token")
	assert.Contains(t, m.View(), "Click to confirm")
}

func TestConfirmFlow_NoticeClosedWithEsc(t *testing.T) {
	root, svc := newTestRoot(t, "t")
	svc.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(models.Notice("Failed to confirm token"))

	m, msg := step(t, root, press("enter"))
	m, _ = step(t, m, msg)
	m, _ = step(t, m, press("esc"))

	assert.NotContains(t, m.View(), "Failed to confirm token")
}

func TestConfirmFlow_RepeatedEnterIssuesIndependentRequests(t *testing.T) {
	root, svc := newTestRoot(t, "abc")
	svc.EXPECT().Confirm(gomock.Any(), models.Token("abc")).Return(models.Redirect("/")).Times(2)

	m, first := root.Update(press("enter"))
	_, second := m.Update(press("enter"))

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.IsType(t, confirmDoneMsg{}, first())
	assert.IsType(t, confirmDoneMsg{}, second())
}

func TestConfirmFlow_CopyActivationURL(t *testing.T) {
	var copied string
	stubClipboard(t, func(text string) error {
		copied = text
		return nil
	})

	root, svc := newTestRoot(t, "abc")
	svc.EXPECT().ActivationURL(models.Token("abc")).Return("http://api/users/activate/abc")

	m, msg := step(t, root, press("c"))
	require.Equal(t, copiedMsg{}, msg)
	assert.Equal(t, "http://api/users/activate/abc", copied)

	m, cmd := m.Update(msg)
	assert.NotNil(t, cmd, "status is cleared later")
	assert.Contains(t, m.View(), "Activation URL copied")

	m, _ = step(t, m, clearStatusMsg{})
	assert.NotContains(t, m.View(), "Activation URL copied")
}

func TestConfirmFlow_CopyFailure(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard") })

	root, svc := newTestRoot(t, "abc")
	svc.EXPECT().ActivationURL(gomock.Any()).Return("u")

	m, msg := step(t, root, press("c"))
	m, _ = m.Update(msg)

	assert.Contains(t, m.View(), "Copy failed: no clipboard")
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	root, _ := newTestRoot(t, "abc")

	m, _ := step(t, root, press("v"))
	view := m.View()
	assert.Contains(t, view, "go-confirm")
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "2026-10-01")

	// other keys are swallowed while the window is open
	m, msg := step(t, m, press("enter"))
	assert.Nil(t, msg)

	m, _ = step(t, m, press("esc"))
	assert.Contains(t, m.View(), "Click to confirm")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _ := newTestRoot(t, "abc")

	m, msg := step(t, root, press("ctrl+c"))

	assert.IsType(t, tea.QuitMsg{}, msg)
	assert.True(t, m.(RootModel).quitByUser)
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	root, _ := newTestRoot(t, "abc")

	m, msg := step(t, root, NavigateTo{Page: "/nowhere"})

	assert.Nil(t, msg)
	assert.Equal(t, PageConfirm, m.(RootModel).CurrentPage())
}

func TestRootPage_Quit(t *testing.T) {
	page := NewRootPageModel()

	_, msg := step(t, page, press("q"))

	assert.IsType(t, tea.QuitMsg{}, msg)
}
