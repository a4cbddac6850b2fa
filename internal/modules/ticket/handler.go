package ticket

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sunspire/solarmart-backend/internal/identity"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Handler exposes support ticket HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/tickets", func(r chi.Router) {
		r.Use(identity.RequireUser)
		r.Post("/", h.createTicket)                  // POST  /api/v1/tickets
		r.Get("/", h.listTickets)                    // GET   /api/v1/tickets?user_id=2
		r.Get("/{id}", h.getTicket)                  // GET   /api/v1/tickets/{id}
		r.Post("/{id}/comments", h.addComment)       // POST  /api/v1/tickets/{id}/comments
		r.With(identity.RequireAdmin).Patch("/{id}", h.updateTicket) // PATCH /api/v1/tickets/{id}
	})
}

func (h *Handler) createTicket(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	var req CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	t, err := h.service.CreateTicket(r.Context(), actor.UserID, req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "invalid") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, t)
}

func (h *Handler) listTickets(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	userID := r.URL.Query().Get("user_id")
	// Customers only ever see their own tickets.
	if actor.Role != store.RoleAdmin {
		userID = actor.UserID
	}
	tickets, err := h.service.ListTickets(r.Context(), userID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, tickets)
}

func (h *Handler) getTicket(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	t, err := h.service.GetTicket(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "ticket not found"})
		return
	}
	if actor.Role != store.RoleAdmin && t.UserID != actor.UserID {
		respond(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}
	respond(w, http.StatusOK, t)
}

func (h *Handler) updateTicket(w http.ResponseWriter, r *http.Request) {
	var req UpdateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	t, err := h.service.UpdateTicket(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			code = http.StatusNotFound
		} else if strings.Contains(err.Error(), "invalid") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, t)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	isAdmin := actor.Role == store.RoleAdmin
	comment, err := h.service.AddComment(r.Context(), chi.URLParam(r, "id"), actor.UserID, req.Content, isAdmin)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			code = http.StatusNotFound
		} else if strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, comment)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
