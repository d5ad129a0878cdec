package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/righttool/righttool-backend/api/controllers"
	"github.com/righttool/righttool-backend/api/middleware"
	jobsvc "github.com/righttool/righttool-backend/internal/jobs"
	lookupsvc "github.com/righttool/righttool-backend/internal/lookup"
	vehiclesvc "github.com/righttool/righttool-backend/internal/vehicles"
	"github.com/righttool/righttool-backend/pkg/config"
	"github.com/righttool/righttool-backend/pkg/db"
	"github.com/righttool/righttool-backend/pkg/logger"
	"github.com/righttool/righttool-backend/pkg/metrics"
	"github.com/righttool/righttool-backend/pkg/redis"
)

// NewRouter assembles the HTTP surface: health probes, the Prometheus
// endpoint, and the versioned catalog API.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	vehicleService vehiclesvc.Service,
	jobService jobsvc.Service,
	lookupService lookupsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if registry != nil {
		r.Use(middleware.Metrics(metrics.NewHTTPMetrics(registry)))
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/vehicles", controllers.ListVehicles(vehicleService, logg))
		r.Get("/jobs", controllers.ListJobs(jobService, logg))
		r.Post("/tools/lookup", controllers.ToolLookup(lookupService, logg))
	})

	return r
}
