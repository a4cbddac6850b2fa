package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sunspire/solarmart-backend/internal/identity"
	"github.com/sunspire/solarmart-backend/internal/store"
)

// Handler exposes the admin analytics HTTP endpoints plus the customer
// energy dashboard feed.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(identity.RequireAdmin)
		r.Get("/sales", h.sales)                  // GET /api/v1/analytics/sales
		r.Get("/products", h.productPerformance)  // GET /api/v1/analytics/products
		r.Get("/orders", h.orderStatistics)       // GET /api/v1/analytics/orders
	})
	r.With(identity.RequireUser).Get("/api/v1/energy/{userID}", h.energy)
}

func (h *Handler) sales(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.SalesByMonth(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, points)
}

func (h *Handler) productPerformance(w http.ResponseWriter, r *http.Request) {
	perf, err := h.service.ProductPerformance(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, perf)
}

func (h *Handler) orderStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.OrderStatistics(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, stats)
}

func (h *Handler) energy(w http.ResponseWriter, r *http.Request) {
	actor, _ := identity.FromContext(r.Context())
	userID := chi.URLParam(r, "userID")
	if actor.Role != store.RoleAdmin && actor.UserID != userID {
		respond(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}
	series, err := h.service.EnergyProduction(r.Context(), userID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, series)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
