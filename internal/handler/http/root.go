package http

import "net/http"

func (h *Handler) showRoot(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	h.render(w, r, rootView, rootViewData{Version: version}, http.StatusOK)
}
