package lookup

import (
	"context"

	"github.com/google/uuid"
	"github.com/righttool/righttool-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository loads the entities the lookup joins across.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to lookup queries.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindVehicle loads a vehicle by its UUID.
func (r *Repository) FindVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// FindJob loads a job by its UUID.
func (r *Repository) FindJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// ListRequirements returns the requirements for one (vehicle, job) pair with
// their tools preloaded, in fixture position order.
func (r *Repository) ListRequirements(ctx context.Context, vehicleID, jobID uuid.UUID) ([]models.Requirement, error) {
	var requirements []models.Requirement
	if err := r.db.WithContext(ctx).
		Preload("Tool").
		Where("vehicle_id = ? AND job_id = ?", vehicleID, jobID).
		Order("position ASC, created_at ASC").
		Find(&requirements).Error; err != nil {
		return nil, err
	}
	return requirements, nil
}
