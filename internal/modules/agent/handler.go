package agent

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the tool discovery and invocation endpoints.
type Handler struct{ dispatcher *Dispatcher }

func NewHandler(dispatcher *Dispatcher) *Handler { return &Handler{dispatcher: dispatcher} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/agent", func(r chi.Router) {
		r.Get("/tools", h.listTools)
		r.Post("/tools/{name}", h.invokeTool)
	})
}

func (h *Handler) listTools(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, Registry)
}

// invokeTool always answers 200 with an Envelope; tool-calling agents branch
// on the status field, not on HTTP codes.
func (h *Handler) invokeTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	env := h.dispatcher.Dispatch(r.Context(), name, body)
	respond(w, http.StatusOK, env)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
