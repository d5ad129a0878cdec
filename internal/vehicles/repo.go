package vehicles

import (
	"context"

	"github.com/righttool/righttool-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles vehicle persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to vehicle operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns the full catalog in the fixed listing order: year
// descending, then make, model and engine ascending. The order is part of the
// API contract, so repeated renders are stable.
func (r *Repository) ListAll(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).
		Order("year DESC, make ASC, model ASC, engine ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}
