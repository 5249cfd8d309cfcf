package service

import (
	"context"

	"github.com/MKhiriev/go-confirm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ConfirmationService turns a confirmation attempt into a declarative
// [models.Outcome]. Shells perform the effect; the service never navigates or
// renders anything itself.
type ConfirmationService interface {
	// Confirm activates the account addressed by token. It returns
	// models.Redirect(models.RootPath) when the activation service accepted
	// the token and models.Notice(models.ConfirmationFailedMessage) for every
	// other result. Confirm never fails on its own: there is no error return.
	Confirm(ctx context.Context, token models.Token) models.Outcome

	// ActivationURL returns the outbound URL a confirmation of token calls.
	ActivationURL(token models.Token) string
}

// AppInfoService exposes static facts about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
