package lookup

import (
	"github.com/google/uuid"

	"github.com/righttool/righttool-backend/internal/jobs"
	"github.com/righttool/righttool-backend/internal/vehicles"
	"github.com/righttool/righttool-backend/pkg/db/models"
)

// ToolDTO is the fully-typed tool shape returned by the lookup. Every
// optional attribute is an explicit nullable field; price is rendered as
// decimal text so currency never round-trips through a float.
type ToolDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Brand  *string   `json:"brand"`
	Size   *string   `json:"size"`
	Drive  *string   `json:"drive"`
	Spec   *string   `json:"spec"`
	Price  *string   `json:"price"`
	BuyURL *string   `json:"buyUrl"`
}

// RequirementDTO is one tool line in a lookup result. Qty defaults to 1 at
// read time when the stored value is absent.
type RequirementDTO struct {
	RequirementID uuid.UUID `json:"requirementId"`
	Qty           int       `json:"qty"`
	Notes         *string   `json:"notes"`
	Tool          ToolDTO   `json:"tool"`
}

// LookupResult echoes the validated vehicle and job alongside the shaped tool
// list. Message is populated only when Tools is empty.
type LookupResult struct {
	Vehicle vehicles.VehicleDTO `json:"vehicle"`
	Job     jobs.JobDTO         `json:"job"`
	Tools   []RequirementDTO    `json:"tools"`
	Message string              `json:"message,omitempty"`
}

func toolFromModel(m *models.Tool) ToolDTO {
	dto := ToolDTO{
		ID:     m.ID,
		Name:   m.Name,
		Brand:  cloneStringPtr(m.Brand),
		Size:   cloneStringPtr(m.Size),
		Drive:  cloneStringPtr(m.Drive),
		Spec:   cloneStringPtr(m.Spec),
		BuyURL: cloneStringPtr(m.BuyURL),
	}
	if m.Price != nil {
		price := m.Price.StringFixed(2)
		dto.Price = &price
	}
	return dto
}

func requirementFromModel(m *models.Requirement) RequirementDTO {
	dto := RequirementDTO{
		RequirementID: m.ID,
		Qty:           1,
		Notes:         cloneStringPtr(m.Notes),
	}
	if m.Qty != nil {
		dto.Qty = *m.Qty
	}
	if m.Tool != nil {
		dto.Tool = toolFromModel(m.Tool)
	}
	return dto
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	cpy := *value
	return &cpy
}
