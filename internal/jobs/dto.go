package jobs

import (
	"github.com/google/uuid"

	"github.com/righttool/righttool-backend/pkg/db/models"
)

// JobDTO is the normalized job shape the client consumes.
type JobDTO struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
}

// FromModel maps the persisted job into a DTO.
func FromModel(m *models.Job) JobDTO {
	return JobDTO{
		ID:       m.ID,
		Slug:     m.Slug,
		Title:    m.Title,
		Category: m.Category,
	}
}

// FromModels maps a slice preserving order.
func FromModels(ms []models.Job) []JobDTO {
	dtos := make([]JobDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, FromModel(&ms[i]))
	}
	return dtos
}
