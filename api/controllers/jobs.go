package controllers

import (
	"net/http"

	"github.com/righttool/righttool-backend/api/responses"
	jobsvc "github.com/righttool/righttool-backend/internal/jobs"
	pkgerrors "github.com/righttool/righttool-backend/pkg/errors"
	"github.com/righttool/righttool-backend/pkg/logger"
)

// ListJobs returns every maintenance job, grouped by category then title.
func ListJobs(svc jobsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "job service unavailable"))
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
