// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-confirm/internal/adapter"
	"github.com/MKhiriev/go-confirm/internal/logger"
	"github.com/MKhiriev/go-confirm/models"
)

type confirmationService struct {
	adapter adapter.ActivationAdapter

	logger *logger.Logger
}

// NewConfirmationService builds the outcome handler on top of an activation
// adapter.
func NewConfirmationService(activationAdapter adapter.ActivationAdapter, logger *logger.Logger) (ConfirmationService, error) {
	if activationAdapter == nil {
		return nil, ErrNoActivationAdapter
	}

	return &confirmationService{
		adapter: activationAdapter,
		logger:  logger,
	}, nil
}

// Confirm implements [ConfirmationService].
//
// Every failure (transport error, any non-2xx status, cancelled context) is
// collapsed into the same notice. The cause only reaches the log.
func (s *confirmationService) Confirm(ctx context.Context, token models.Token) models.Outcome {
	log := logger.FromContextOr(ctx, s.logger)

	log.Debug().Str("token", token.String()).Msg("confirming token")

	if err := s.adapter.Activate(ctx, token); err != nil {
		log.Warn().Err(err).Str("token", token.String()).Msg("token confirmation failed")
		return models.Notice(models.ConfirmationFailedMessage)
	}

	log.Info().Str("token", token.String()).Msg("token confirmed")
	return models.Redirect(models.RootPath)
}

// ActivationURL implements [ConfirmationService].
func (s *confirmationService) ActivationURL(token models.Token) string {
	return s.adapter.ActivationURL(token)
}
