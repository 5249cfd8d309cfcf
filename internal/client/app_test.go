package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-confirm/internal/config"
	"github.com/MKhiriev/go-confirm/internal/logger"
	"github.com/MKhiriev/go-confirm/internal/tui"
	"github.com/MKhiriev/go-confirm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	token     models.Token
	calls     int
	confirmed bool
	err       error
}

func (f *fakeUI) ConfirmFlow(_ context.Context, token models.Token) (bool, error) {
	f.calls++
	f.token = token
	return f.confirmed, f.err
}

func newTestApp(t *testing.T, ui ConfirmationUI, link string) *App {
	t.Helper()
	app, err := NewApp(ui, &config.ClientConfig{Link: link}, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestNewApp_NoUI(t *testing.T) {
	app, err := NewApp(nil, &config.ClientConfig{}, logger.Nop())

	assert.Nil(t, app)
	assert.Error(t, err)
}

func TestApp_Run_PassesTokenFromLink(t *testing.T) {
	tests := []struct {
		link string
		want models.Token
	}{
		{link: "https://example.com/confirm/abc123", want: "abc123"},
		{link: "abc123", want: "abc123"},
		{link: "/confirm/expired-token", want: "expired-token"},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			ui := &fakeUI{confirmed: true}

			err := newTestApp(t, ui, tt.link).Run()

			require.NoError(t, err)
			assert.Equal(t, 1, ui.calls)
			assert.Equal(t, tt.want, ui.token)
		})
	}
}

func TestApp_Run_NoToken(t *testing.T) {
	ui := &fakeUI{}

	err := newTestApp(t, ui, "https://example.com/confirm/").Run()

	assert.ErrorIs(t, err, ErrNoToken)
	assert.Zero(t, ui.calls)
}

func TestApp_Run_UserQuitIsNotAnError(t *testing.T) {
	ui := &fakeUI{err: tui.ErrUserQuit}

	assert.NoError(t, newTestApp(t, ui, "abc").Run())
}

func TestApp_Run_UIError(t *testing.T) {
	boom := errors.New("boom")
	ui := &fakeUI{err: boom}

	err := newTestApp(t, ui, "abc").Run()

	assert.ErrorIs(t, err, boom)
}

func TestApp_ImplementsClient(t *testing.T) {
	var _ Client = newTestApp(t, &fakeUI{}, "abc")
}
