package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-confirm/internal/config"
	"github.com/MKhiriev/go-confirm/internal/logger"
	"github.com/MKhiriev/go-confirm/internal/utils"
	"github.com/MKhiriev/go-confirm/models"
)

const activatePath = "/users/activate/{token}"

type httpActivationAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPActivationAdapter constructs an HTTP/REST implementation of
// [ActivationAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPActivationAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ActivationAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithTraceIDForwarding()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	logger.Info().Str("base_url", baseURL).Msg("activation adapter created")

	return &httpActivationAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Activate implements [ActivationAdapter]. It sends
// PUT /users/activate/{token} without a body. The token is path-escaped so
// that it always stays one segment.
func (h *httpActivationAdapter) Activate(ctx context.Context, token models.Token) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("token", token.String()).
		Put(activatePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrActivationRequest, err)
	}

	logger.FromContextOr(ctx, h.logger).Debug().
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("activation response")

	return mapHTTPError(resp)
}

// ActivationURL implements [ActivationAdapter].
func (h *httpActivationAdapter) ActivationURL(token models.Token) string {
	return h.baseURL + strings.Replace(activatePath, "{token}", url.PathEscape(token.String()), 1)
}
