package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sunspire/solarmart-backend/internal/identity"
)

// Handler exposes cart HTTP endpoints. All routes act on the
// authenticated user's own cart.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(identity.RequireUser)
		r.Get("/", h.getCart)                        // GET    /api/v1/cart
		r.Post("/items", h.addItem)                  // POST   /api/v1/cart/items
		r.Put("/items/{productID}", h.updateItem)    // PUT    /api/v1/cart/items/{productID}
		r.Delete("/items/{productID}", h.removeItem) // DELETE /api/v1/cart/items/{productID}
		r.Delete("/", h.clearCart)                   // DELETE /api/v1/cart
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	summary, err := h.service.Summary(r.Context(), actor.UserID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.service.AddItem(r.Context(), actor.UserID, req.ProductID, req.Quantity); err != nil {
		respond(w, cartErrorCode(err), map[string]string{"error": err.Error()})
		return
	}
	h.getCart(w, r)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	productID := chi.URLParam(r, "productID")
	if err := h.service.UpdateItem(r.Context(), actor.UserID, productID, req.Quantity); err != nil {
		respond(w, cartErrorCode(err), map[string]string{"error": err.Error()})
		return
	}
	h.getCart(w, r)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	if err := h.service.RemoveItem(r.Context(), actor.UserID, chi.URLParam(r, "productID")); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.getCart(w, r)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	if err := h.service.Clear(r.Context(), actor.UserID); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "cart cleared"})
}

func cartErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, ErrProductUnavailable), errors.Is(err, ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
