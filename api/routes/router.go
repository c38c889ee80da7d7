package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flyerworks/flyerworks-backend/api/controllers"
	pricingcontrollers "github.com/flyerworks/flyerworks-backend/api/controllers/pricing"
	"github.com/flyerworks/flyerworks-backend/api/middleware"
	pricingsvc "github.com/flyerworks/flyerworks-backend/internal/pricing"
	"github.com/flyerworks/flyerworks-backend/pkg/config"
	"github.com/flyerworks/flyerworks-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisP controllers.Pinger,
	registry *prometheus.Registry,
	pricingService pricingsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/pricing", func(r chi.Router) {
		r.Post("/calculate", pricingcontrollers.Calculate(pricingService, logg))
		r.Get("/options/{productId}", pricingcontrollers.Options(pricingService, logg))
	})

	return r
}
