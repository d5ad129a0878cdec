package vehicles

import (
	"github.com/google/uuid"

	"github.com/righttool/righttool-backend/pkg/db/models"
)

// VehicleDTO is the normalized vehicle shape the client consumes.
type VehicleDTO struct {
	ID     uuid.UUID `json:"id"`
	Year   int       `json:"year"`
	Make   string    `json:"make"`
	Model  string    `json:"model"`
	Engine string    `json:"engine"`
	Trim   *string   `json:"trim"`
}

// FromModel maps the persisted vehicle into a DTO.
func FromModel(m *models.Vehicle) VehicleDTO {
	dto := VehicleDTO{
		ID:     m.ID,
		Year:   m.Year,
		Make:   m.Make,
		Model:  m.Model,
		Engine: m.Engine,
	}
	if m.Trim != nil {
		cpy := *m.Trim
		dto.Trim = &cpy
	}
	return dto
}

// FromModels maps a slice preserving order.
func FromModels(ms []models.Vehicle) []VehicleDTO {
	dtos := make([]VehicleDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, FromModel(&ms[i]))
	}
	return dtos
}
