package http

import (
	"net/http"

	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/utils"
)

func (h *Handler) serverVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.AppInfo(r.Context())

	w.Header().Set("Cache-Control", "no-store")
	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing version response")
	}
}
