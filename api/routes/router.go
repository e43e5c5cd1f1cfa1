package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/controllers"
	"github.com/mrokonuzzaman040/techpinik-sub000/api/middleware"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/cart"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/catalog"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/categories"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/districts"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/media"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/orders"
	"github.com/mrokonuzzaman040/techpinik-sub000/internal/sliders"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/metrics"
)

// Services bundles everything the router mounts.
type Services struct {
	Catalog    catalog.Service
	Categories categories.Service
	Districts  districts.Service
	Sliders    sliders.Service
	Cart       cart.Service
	Orders     orders.Service
	Media      media.Service
}

// Options configures the router.
type Options struct {
	Logger      *logger.Logger
	Metrics     *metrics.HTTPMetrics
	Registry    *prometheus.Registry
	CORSOrigins []string
	Readiness   map[string]controllers.Pinger
}

// New assembles the HTTP surface: storefront and admin APIs, health checks,
// and the metrics endpoint.
func New(svcs Services, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID(opts.Logger))
	r.Use(middleware.Recoverer(opts.Logger))
	r.Use(middleware.Logging(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.HeaderRequestID, controllers.HeaderCartSession},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health/live", controllers.Liveness())
	r.Get("/health/ready", controllers.Readiness(opts.Readiness))
	if opts.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(svcs.Catalog, opts.Logger))
			r.Post("/", controllers.CreateProduct(svcs.Catalog, opts.Logger))
			r.Get("/{id}", controllers.GetProduct(svcs.Catalog, opts.Logger))
			r.Put("/{id}", controllers.UpdateProduct(svcs.Catalog, opts.Logger))
			r.Delete("/{id}", controllers.DeleteProduct(svcs.Catalog, opts.Logger))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(svcs.Categories, opts.Logger, false))
			r.Post("/", controllers.CreateCategory(svcs.Categories, opts.Logger))
			r.Get("/{id}", controllers.GetCategory(svcs.Categories, opts.Logger))
			r.Put("/{id}", controllers.UpdateCategory(svcs.Categories, opts.Logger))
			r.Delete("/{id}", controllers.DeleteCategory(svcs.Categories, opts.Logger))
		})

		r.Route("/districts", func(r chi.Router) {
			r.Get("/", controllers.ListDistricts(svcs.Districts, opts.Logger, true))
			r.Post("/", controllers.CreateDistrict(svcs.Districts, opts.Logger))
			r.Put("/{id}", controllers.UpdateDistrict(svcs.Districts, opts.Logger))
			r.Delete("/{id}", controllers.DeleteDistrict(svcs.Districts, opts.Logger))
		})

		r.Route("/sliders", func(r chi.Router) {
			r.Get("/", controllers.ListSliders(svcs.Sliders, opts.Logger, true))
			r.Post("/", controllers.CreateSlider(svcs.Sliders, opts.Logger))
			r.Put("/{id}", controllers.UpdateSlider(svcs.Sliders, opts.Logger))
			r.Delete("/{id}", controllers.DeleteSlider(svcs.Sliders, opts.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(svcs.Cart, opts.Logger))
			r.Post("/items", controllers.AddCartItem(svcs.Cart, opts.Logger))
			r.Patch("/items/{productId}", controllers.UpdateCartItem(svcs.Cart, opts.Logger))
			r.Delete("/items/{productId}", controllers.RemoveCartItem(svcs.Cart, opts.Logger))
			r.Delete("/", controllers.ClearCart(svcs.Cart, opts.Logger))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(svcs.Orders, opts.Logger))
			r.Post("/", controllers.CreateOrder(svcs.Orders, opts.Logger))
			r.Get("/{id}", controllers.GetOrder(svcs.Orders, opts.Logger))
			r.Put("/{id}", controllers.UpdateOrder(svcs.Orders, opts.Logger))
			r.Delete("/{id}", controllers.DeleteOrder(svcs.Orders, opts.Logger))
		})

		r.Post("/media", controllers.UploadMedia(svcs.Media, opts.Logger))
	})

	return r
}
