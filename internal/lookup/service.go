package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/righttool/righttool-backend/internal/jobs"
	"github.com/righttool/righttool-backend/internal/vehicles"
	"github.com/righttool/righttool-backend/pkg/db/models"
	pkgerrors "github.com/righttool/righttool-backend/pkg/errors"
)

// EmptyResultMessage is returned when a valid pair has no requirements.
const EmptyResultMessage = "No tools found for this vehicle/job."

type vehicleFinder interface {
	FindVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
}

type jobFinder interface {
	FindJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
}

type requirementLister interface {
	ListRequirements(ctx context.Context, vehicleID, jobID uuid.UUID) ([]models.Requirement, error)
}

type lookupRepository interface {
	vehicleFinder
	jobFinder
	requirementLister
}

// Service resolves the tool list for a (vehicle, job) pair.
type Service interface {
	Lookup(ctx context.Context, vehicleID, jobID uuid.UUID) (*LookupResult, error)
}

type service struct {
	repo lookupRepository
}

// NewService builds a lookup service over the provided repository.
func NewService(repo lookupRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("lookup repository required")
	}
	return &service{repo: repo}, nil
}

// Lookup validates both identifiers and returns the joined, shaped tool list.
// The vehicle and job existence checks are independent and run concurrently;
// when both are missing, the vehicle error wins. An empty tool list for a
// valid pair is success, not an error.
func (s *service) Lookup(ctx context.Context, vehicleID, jobID uuid.UUID) (*LookupResult, error) {
	var (
		vehicle *models.Vehicle
		job     *models.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.repo.FindVehicle(gctx, vehicleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vehicle")
		}
		vehicle = found
		return nil
	})
	g.Go(func() error {
		found, err := s.repo.FindJob(gctx, jobID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load job")
		}
		job = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if vehicle == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
	}
	if job == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "job not found")
	}

	rows, err := s.repo.ListRequirements(ctx, vehicleID, jobID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list requirements")
	}

	result := &LookupResult{
		Vehicle: vehicles.FromModel(vehicle),
		Job:     jobs.FromModel(job),
		Tools:   make([]RequirementDTO, 0, len(rows)),
	}
	for i := range rows {
		result.Tools = append(result.Tools, requirementFromModel(&rows[i]))
	}
	if len(result.Tools) == 0 {
		result.Message = EmptyResultMessage
	}
	return result, nil
}
