package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/koraytemur/hirdavat/internal/service"
	"github.com/koraytemur/hirdavat/pkg/health"
	"github.com/koraytemur/hirdavat/pkg/middleware"
)

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	storefront *service.Storefront,
	healthHandler *health.Handler,
	logger *slog.Logger,
	pprofCIDRs []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(CORS)
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, pprofCIDRs, logger)

	// Storefront API endpoints
	h := NewStorefrontHandler(storefront, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(DeviceIDFromHeader)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)

			r.Post("/items", h.AddItem)
			r.Put("/items/{productId}", h.UpdateItemQuantity)
			r.Delete("/items/{productId}", h.RemoveItem)

			r.Post("/discount", h.ApplyDiscount)
			r.Delete("/discount", h.RemoveDiscount)
		})

		r.Post("/checkout", h.Checkout)

		r.Get("/categories", h.ListCategories)
		r.Get("/products", h.ListProducts)
		r.Get("/products/{productId}", h.GetProduct)

		r.Route("/session", func(r chi.Router) {
			r.Get("/language", h.GetLanguage)
			r.Put("/language", h.SetLanguage)
			r.Get("/translations", h.GetTranslations)
		})
	})

	return r
}
