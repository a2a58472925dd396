package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fleet-dispatch-go/internal/http/handlers"
	appmw "fleet-dispatch-go/internal/http/middleware"
	"fleet-dispatch-go/internal/http/middleware/ratelimit"
	"fleet-dispatch-go/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	h *handlers.Handlers,
	trips *handlers.TripHandler,
	avail *handlers.AvailabilityHandler,
	rl *ratelimit.Middleware,
	logger logx.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.Observability(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	// the booking surfaces carry the per-tenant rate limit; health and
	// metrics stay unlimited
	limited := rl.Handler()

	r.Route("/trips", func(r chi.Router) {
		r.Use(limited)
		r.Post("/validate", trips.Validate)
		r.Post("/", trips.Create)
		r.Put("/{id}", trips.Update)
		r.Post("/{id}/status", trips.Transition)
		r.Delete("/{id}", trips.Delete)
	})

	r.Route("/availability", func(r chi.Router) {
		r.Use(limited)
		r.Post("/search", avail.Search)
		r.Post("/auto-assign", avail.AutoAssign)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
