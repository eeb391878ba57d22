package router

import (
	"net/http"

	"hamshark/internal/handler"
	"hamshark/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	orderHandler *handler.OrderHandler,
	truckHandler *handler.TruckHandler,
	membershipHandler *handler.MembershipHandler,
	loyaltyHandler *handler.LoyaltyHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("GET /api/menu", menuHandler.GetAll)
	mux.HandleFunc("GET /api/menu/category/{category}", menuHandler.GetByCategory)
	mux.HandleFunc("GET /api/menu/cuisine/{cuisine}", menuHandler.GetByCuisine)
	mux.HandleFunc("GET /api/menu/{id}", menuHandler.GetByID)

	mux.HandleFunc("POST /api/orders", orderHandler.Create)
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.GetByID)
	mux.HandleFunc("PATCH /api/orders/{id}/status", orderHandler.UpdateStatus)

	mux.HandleFunc("GET /api/trucks", truckHandler.GetAll)
	mux.HandleFunc("GET /api/trucks/{id}", truckHandler.GetByID)
	mux.HandleFunc("PATCH /api/trucks/{id}/status", truckHandler.UpdateStatus)

	mux.HandleFunc("GET /api/membership-plans", membershipHandler.GetAll)
	mux.HandleFunc("GET /api/membership-plans/{id}", membershipHandler.GetByID)

	mux.HandleFunc("GET /api/loyalty-rewards", loyaltyHandler.GetAll)
	mux.HandleFunc("GET /api/loyalty-rewards/tier/{tier}", loyaltyHandler.GetByTier)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
