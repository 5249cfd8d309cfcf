package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-confirm/internal/app"
	"github.com/MKhiriev/go-confirm/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var views = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	confirmView = "confirm.html"
	rootView    = "root.html"
)

type confirmViewData struct {
	Action string
	Notice string
}

type rootViewData struct {
	Version string
}

// render executes the named view into a buffer first so that a template
// error still produces a clean 500 response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any, statusCode int) {
	log := logger.FromContextOr(r.Context(), h.logger)

	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("view", name).Msg("error rendering view")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("view", name).Msg("error writing view")
	}
}
