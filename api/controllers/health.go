package controllers

import (
	"net/http"

	"github.com/righttool/righttool-backend/api/responses"
	"github.com/righttool/righttool-backend/pkg/config"
	"github.com/righttool/righttool-backend/pkg/db"
	pkgerrors "github.com/righttool/righttool-backend/pkg/errors"
	"github.com/righttool/righttool-backend/pkg/logger"
	"github.com/righttool/righttool-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RightTool-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the catalog store and, when wired, the listing cache.
// A dead cache degrades listings but does not fail readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RightTool-Env", cfg.App.Env)

		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "database not wired"))
			return
		}
		if err := dbP.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		}

		cache := "disabled"
		if redisClient != nil {
			cache = "ok"
			if err := redisClient.Ping(r.Context()); err != nil {
				cache = "unavailable"
				logg.Warn(r.Context(), "listing cache unreachable")
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready", "cache": cache})
	}
}
