package payment

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sunspire/solarmart-backend/internal/identity"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Handler exposes payment HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/payments", func(r chi.Router) {
		r.Use(identity.RequireUser)
		r.Get("/", h.listPayments)                        // GET  /api/v1/payments?user_id=2
		r.Get("/{id}", h.getPayment)                      // GET  /api/v1/payments/{id}
		r.With(identity.RequireAdmin).Post("/", h.recordPayment) // POST /api/v1/payments
	})
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	userID := r.URL.Query().Get("user_id")
	// Customers only ever see their own records.
	if actor.Role != store.RoleAdmin {
		userID = actor.UserID
	}
	payments, err := h.service.ListPayments(r.Context(), userID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, payments)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	p, err := h.service.GetPayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "payment not found"})
		return
	}
	if actor.Role != store.RoleAdmin && p.UserID != actor.UserID {
		respond(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.RecordPayment(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "must be") || strings.Contains(err.Error(), "invalid") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, p)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
