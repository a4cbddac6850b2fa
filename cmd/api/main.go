package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/sunspire/solarmart-backend/internal/identity"
	"github.com/sunspire/solarmart-backend/internal/metrics"
	"github.com/sunspire/solarmart-backend/internal/modules/analytics"
	"github.com/sunspire/solarmart-backend/internal/modules/auth"
	"github.com/sunspire/solarmart-backend/internal/modules/cart"
	"github.com/sunspire/solarmart-backend/internal/modules/catalog"
	"github.com/sunspire/solarmart-backend/internal/modules/chat"
	"github.com/sunspire/solarmart-backend/internal/modules/order"
	"github.com/sunspire/solarmart-backend/internal/modules/payment"
	"github.com/sunspire/solarmart-backend/internal/modules/referral"
	"github.com/sunspire/solarmart-backend/internal/modules/ticket"
	"github.com/sunspire/solarmart-backend/internal/modules/user"
	"github.com/sunspire/solarmart-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	snapshotPath := os.Getenv("SNAPSHOT_PATH")
	if snapshotPath == "" {
		snapshotPath = "solarmart.json"
	}
	db, err := store.Open(snapshotPath)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Store loaded from %s\n", snapshotPath)

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		jwtSecret = []byte("dev-secret-change-me")
		log.Println("JWT_SECRET not set, using development secret")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(metrics.Middleware)
	router.Use(identity.Authenticate(jwtSecret))
	metrics.RegisterRoutes(router)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewMemoryRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo, jwtSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog & Cart ──────────────────────────────────────
	catalogRepo := catalog.NewMemoryRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	cartRepo := cart.NewMemoryRepository(db)
	cartService := cart.NewService(cartRepo)
	cart.NewHandler(cartService).RegisterRoutes(router)

	// ── Orders & Payments ───────────────────────────────────
	gateway := payment.NewSandboxGateway()

	paymentRepo := payment.NewMemoryRepository(db)
	paymentService := payment.NewService(paymentRepo, gateway)
	payment.NewHandler(paymentService).RegisterRoutes(router)

	orderRepo := order.NewMemoryRepository(db)
	orderService := order.NewService(orderRepo, gateway)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Support ─────────────────────────────────────────────
	ticketRepo := ticket.NewMemoryRepository(db)
	ticketService := ticket.NewService(ticketRepo)
	ticket.NewHandler(ticketService).RegisterRoutes(router)

	chatRepo := chat.NewMemoryRepository(db)
	chatService := chat.NewService(chatRepo)
	chat.NewHandler(chatService).RegisterRoutes(router)

	// ── Referrals & Analytics ───────────────────────────────
	referralRepo := referral.NewMemoryRepository(db)
	referralService := referral.NewService(referralRepo)
	referral.NewHandler(referralService).RegisterRoutes(router)

	analyticsRepo := analytics.NewMemoryRepository(db)
	analyticsService := analytics.NewService(analyticsRepo)
	analytics.NewHandler(analyticsService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Solarmart API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
