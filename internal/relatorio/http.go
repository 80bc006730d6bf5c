package relatorio

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	internalhttp "github.com/techsolutions/treinamentos/internal/http/response"
)

// Handler expõe o endpoint do painel.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/stats", h.dashboardStats)
}

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		internalhttp.WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível calcular estatísticas", nil)
		return
	}
	internalhttp.WriteJSON(w, http.StatusOK, stats)
}
