package referral

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sunspire/solarmart-backend/internal/identity"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Handler exposes referral HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/referrals", func(r chi.Router) {
		r.Use(identity.RequireUser)
		r.Post("/", h.addReferral) // POST  /api/v1/referrals
		r.Get("/", h.listReferrals) // GET   /api/v1/referrals
		r.With(identity.RequireAdmin).Patch("/{id}/status", h.advanceStatus) // PATCH /api/v1/referrals/{id}/status
	})
}

func (h *Handler) addReferral(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	var req struct {
		ReferredEmail string `json:"referred_email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	ref, err := h.service.AddReferral(r.Context(), actor.UserID, req.ReferredEmail)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, ref)
}

func (h *Handler) listReferrals(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	referrerID := r.URL.Query().Get("referrer_id")
	// Customers only ever see their own referrals.
	if actor.Role != store.RoleAdmin {
		referrerID = actor.UserID
	}
	refs, err := h.service.ListReferrals(r.Context(), referrerID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, refs)
}

func (h *Handler) advanceStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	ref, err := h.service.AdvanceStatus(r.Context(), chi.URLParam(r, "id"), store.ReferralStatus(req.Status))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			code = http.StatusNotFound
		} else if strings.Contains(err.Error(), "cannot move") {
			code = http.StatusUnprocessableEntity
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, ref)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
