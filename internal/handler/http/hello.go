package http

import (
	"net/http"

	"github.com/MKhiriev/hamkee/internal/logger"
	"github.com/MKhiriev/hamkee/internal/utils"
	"github.com/MKhiriev/hamkee/models"
)

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	greeting := h.services.GreetingService.Greet(r.Context())

	if _, err := utils.WriteJSON(w, greeting, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing greeting")
	}
}

// Healthz reports liveness. It does not depend on any service.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthStatus{Status: MsgHealthy}, http.StatusOK)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: MsgNotFound}, http.StatusNotFound)
}
