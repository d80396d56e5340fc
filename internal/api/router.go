package api

import (
	_ "fxdeals/docs"
	"fxdeals/internal/deal/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
	"github.com/ulule/limiter/v3"
	limiterhttp "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
)

// NewRouter builds the HTTP routes. A nil limiter disables rate limiting.
func NewRouter(dealHandler *handler.Handler, rateLimiter *limiter.Limiter) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1/deals", func(r chi.Router) {
		if rateLimiter != nil {
			r.Use(limiterhttp.NewMiddleware(rateLimiter).Handler)
		}
		r.Post("/", dealHandler.ImportDeal)
		r.Post("/batch", dealHandler.ImportBatch)
		r.Get("/supported-currencies", dealHandler.GetSupportedCodes)
	})
	return router
}
