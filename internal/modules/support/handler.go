package support

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes customer-support HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/support", func(r chi.Router) {
		r.Get("/customers/{customer_id}", h.lookupCustomer)
		r.Get("/customers", h.findCustomers) // ?name=...
		r.Get("/customers/{customer_id}/orders", h.customerOrders)
		r.Get("/orders/{order_id}", h.orderStatus)
		r.Post("/orders/{order_id}/refund", h.processRefund)
	})
}

func (h *Handler) lookupCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.LookupCustomer(r.Context(), chi.URLParam(r, "customer_id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, customer)
}

func (h *Handler) findCustomers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	customers, err := h.service.LookupCustomerByName(r.Context(), name)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, customers)
}

func (h *Handler) customerOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetCustomerOrders(r.Context(), chi.URLParam(r, "customer_id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) orderStatus(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.CheckOrderStatus(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, detail)
}

func (h *Handler) processRefund(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	conf, err := h.service.ProcessRefund(r.Context(), chi.URLParam(r, "order_id"), body.Reason)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusCreated, conf)
}

// fail maps domain errors onto HTTP status codes.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	var notRefundable *ErrOrderNotRefundable
	var alreadyRefunded *ErrAlreadyRefunded
	switch {
	case errors.Is(err, ErrCustomerNotFound), errors.Is(err, ErrOrderNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &notRefundable), errors.As(err, &alreadyRefunded):
		respond(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
