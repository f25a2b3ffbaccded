package inventory

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/inventory", func(r chi.Router) {
		r.Get("/products", h.searchInventory) // ?category=...&low_stock_only=true
		r.Get("/products/{product_id}/stock", h.checkStock)
	})
}

func (h *Handler) checkStock(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	report, err := h.service.CheckStock(r.Context(), productID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func (h *Handler) searchInventory(w http.ResponseWriter, r *http.Request) {
	filter := SearchFilter{
		Category:     r.URL.Query().Get("category"),
		LowStockOnly: r.URL.Query().Get("low_stock_only") == "true",
	}
	summaries, err := h.service.SearchInventory(r.Context(), filter)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summaries)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
