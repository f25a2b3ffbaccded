package purchasing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stocksense-io/stocksense-backend/internal/modules/inventory"
)

// Handler exposes purchase-order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/purchase-orders", func(r chi.Router) {
		r.Post("/", h.createOrder)
		r.Get("/{po_id}", h.getOrder)
		r.Get("/", h.listOrders) // ?product_id=...
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	conf, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrProductNotFound):
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		case errors.Is(err, ErrInvalidQuantity):
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}
	respond(w, http.StatusCreated, conf)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	poID := chi.URLParam(r, "po_id")
	po, err := h.service.GetOrder(r.Context(), poID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, po)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "product_id is required"})
		return
	}
	orders, err := h.service.ListProductOrders(r.Context(), productID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, orders)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
