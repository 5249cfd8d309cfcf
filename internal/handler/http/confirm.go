// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-confirm/internal/utils"
	"github.com/MKhiriev/go-confirm/models"
	"github.com/go-chi/chi/v5"
)

// showConfirmation renders the confirmation view for the token in the path.
func (h *Handler) showConfirmation(w http.ResponseWriter, r *http.Request) {
	token := tokenFromRequest(r)

	h.render(w, r, confirmView, confirmViewData{Action: confirmAction(token)}, http.StatusOK)
}

// confirm runs the confirmation and performs the resulting effect: a 303
// redirect on success, or the same view with a blocking notice otherwise.
func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	token := tokenFromRequest(r)

	outcome := h.services.ConfirmationService.Confirm(r.Context(), token)
	if outcome.IsRedirect() {
		http.Redirect(w, r, outcome.To, http.StatusSeeOther)
		return
	}

	h.render(w, r, confirmView, confirmViewData{
		Action: confirmAction(token),
		Notice: outcome.Message,
	}, http.StatusOK)
}

// confirmAPI returns the outcome itself and leaves the effect to the caller.
func (h *Handler) confirmAPI(w http.ResponseWriter, r *http.Request) {
	outcome := h.services.ConfirmationService.Confirm(r.Context(), tokenFromRequest(r))

	if _, err := utils.WriteJSON(w, outcome, http.StatusOK); err != nil {
		h.logger.Error().Err(err).Msg("error writing confirmation outcome")
	}
}

// tokenFromRequest reads the {token} route parameter. Chi matches on the raw
// path when the request carries escaped characters, so the value is
// unescaped in that case.
func tokenFromRequest(r *http.Request) models.Token {
	token := chi.URLParam(r, "token")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(token); err == nil {
			token = unescaped
		}
	}

	return models.Token(token)
}

func confirmAction(token models.Token) string {
	return "/confirm/" + url.PathEscape(token.String())
}
