package sales

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stocksense-io/stocksense-backend/internal/modules/inventory"
)

// Handler exposes sales-trend HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/sales/{product_id}/trend", h.getTrend)
}

func (h *Handler) getTrend(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	report, err := h.service.AnalyzeTrend(r.Context(), productID)
	if err != nil {
		if errors.Is(err, inventory.ErrProductNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
