package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TNRIN/DRESS/internal/service"
	"github.com/TNRIN/DRESS/pkg/health"
	"github.com/TNRIN/DRESS/pkg/middleware"
)

// Services groups the storefront services the router exposes.
type Services struct {
	Catalog  *service.CatalogService
	Cart     *service.CartService
	Checkout *service.CheckoutService
	Settings *service.SettingsService
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	services Services,
	healthHandler *health.Handler,
	logger *slog.Logger,
	corsConfig middleware.CORSConfig,
	freeShippingThreshold float64,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(corsConfig))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	catalogHandler := NewCatalogHandler(services.Catalog, logger)
	cartHandler := NewCartHandler(services.Cart, logger)
	checkoutHandler := NewCheckoutHandler(services.Checkout, logger)
	storeHandler := NewStoreHandler(services.Settings, freeShippingThreshold, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{id}", catalogHandler.GetProduct)
		r.Get("/categories", catalogHandler.ListCategories)
		r.Post("/catalog/reload", catalogHandler.ReloadCatalog)
		r.Get("/store", storeHandler.GetStore)

		r.Route("/cart", func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Use(SessionIDFromHeader)

			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)

			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{index}", cartHandler.UpdateItemQuantity)
			r.Delete("/items/{index}", cartHandler.RemoveItem)
		})

		r.With(ContentTypeJSON, SessionIDFromHeader).Post("/checkout", checkoutHandler.Checkout)
	})

	return r
}
