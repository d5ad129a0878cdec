package controllers

import (
	"net/http"

	"github.com/righttool/righttool-backend/api/responses"
	vehiclesvc "github.com/righttool/righttool-backend/internal/vehicles"
	pkgerrors "github.com/righttool/righttool-backend/pkg/errors"
	"github.com/righttool/righttool-backend/pkg/logger"
)

// ListVehicles returns the full vehicle catalog in listing order.
func ListVehicles(svc vehiclesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vehicle service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}
