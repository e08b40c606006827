package http

import (
	"net/http"

	"github.com/MKhiriev/go-captioner/internal/utils"
)

func (h *Handler) languages(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.TranslationService.Languages(r.Context()), http.StatusOK)
}
