package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/righttool/righttool-backend/api/responses"
	"github.com/righttool/righttool-backend/api/validators"
	lookupsvc "github.com/righttool/righttool-backend/internal/lookup"
	pkgerrors "github.com/righttool/righttool-backend/pkg/errors"
	"github.com/righttool/righttool-backend/pkg/logger"
)

type toolLookupRequest struct {
	VehicleID string `json:"vehicleId" validate:"required,uuid"`
	JobID     string `json:"jobId" validate:"required,uuid"`
}

// ToolLookup resolves the ordered tool list for one (vehicle, job) pair.
func ToolLookup(svc lookupsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "lookup service unavailable"))
			return
		}

		var payload toolLookupRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vehicleID, err := uuid.Parse(payload.VehicleID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vehicle id"))
			return
		}
		jobID, err := uuid.Parse(payload.JobID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid job id"))
			return
		}

		result, err := svc.Lookup(r.Context(), vehicleID, jobID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
