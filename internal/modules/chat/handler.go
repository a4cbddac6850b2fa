package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sunspire/solarmart-backend/internal/identity"
)

// Handler exposes chat HTTP endpoints. All routes act on the
// authenticated user's own history.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/chat", func(r chi.Router) {
		r.Use(identity.RequireUser)
		r.Post("/messages", h.postMessage) // POST /api/v1/chat/messages
		r.Get("/messages", h.history)      // GET  /api/v1/chat/messages
		r.Post("/read", h.markRead)        // POST /api/v1/chat/read
	})
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	exchange, err := h.service.Post(r.Context(), actor.UserID, req.Content)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, exchange)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	messages, err := h.service.History(r.Context(), actor.UserID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, messages)
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	if err := h.service.MarkRead(r.Context(), actor.UserID); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "chat marked as read"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
