package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sunspire/solarmart-backend/internal/identity"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Use(identity.RequireUser)
		r.Post("/", h.placeOrder)                // POST  /api/v1/orders
		r.Get("/", h.listOrders)                 // GET   /api/v1/orders?user_id=2
		r.Get("/{id}", h.getOrder)               // GET   /api/v1/orders/{id}
		r.Get("/{id}/tracking", h.getTracking)   // GET   /api/v1/orders/{id}/tracking
		r.Group(func(r chi.Router) {
			r.Use(identity.RequireAdmin)
			r.Patch("/{id}/status", h.updateStatus)           // PATCH /api/v1/orders/{id}/status
			r.Post("/{id}/tracking", h.addTracking)           // POST  /api/v1/orders/{id}/tracking
			r.Post("/{id}/tracking/updates", h.updateTracking) // POST  /api/v1/orders/{id}/tracking/updates
		})
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), actor.UserID, req)
	if err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInsufficientStock):
			code = http.StatusUnprocessableEntity
		case errors.Is(err, store.ErrNotFound):
			code = http.StatusNotFound
		case strings.Contains(err.Error(), "payment failed"):
			code = http.StatusPaymentRequired
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	userID := r.URL.Query().Get("user_id")
	// Customers only ever see their own orders.
	if actor.Role != store.RoleAdmin {
		userID = actor.UserID
	}
	orders, err := h.service.ListOrders(r.Context(), userID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	o, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	if actor.Role != store.RoleAdmin && o.UserID != actor.UserID {
		respond(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respond(w, trackingErrorCode(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) addTracking(w http.ResponseWriter, r *http.Request) {
	var req AddTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	t, err := h.service.AddTracking(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		code := trackingErrorCode(err)
		if strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, t)
}

func (h *Handler) getTracking(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	orderID := chi.URLParam(r, "id")
	o, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	if actor.Role != store.RoleAdmin && o.UserID != actor.UserID {
		respond(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}
	t, err := h.service.GetTracking(r.Context(), orderID)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "no tracking for this order"})
		return
	}
	respond(w, http.StatusOK, t)
}

func (h *Handler) updateTracking(w http.ResponseWriter, r *http.Request) {
	var req TrackingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	t, err := h.service.UpdateTracking(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respond(w, trackingErrorCode(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, t)
}

func trackingErrorCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidTracking):
		return http.StatusBadRequest
	case errors.Is(err, ErrTrackingExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
