package jobs

import (
	"context"

	"github.com/righttool/righttool-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles job persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to job operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every job ordered by category then title.
func (r *Repository) ListAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Order("category ASC, title ASC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindBySlug loads a job by its unique slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
