package models

import (
	"time"

	"github.com/google/uuid"
)

// Requirement links one Tool, in a given quantity, to a (Vehicle, Job) pair.
// Qty is nullable in storage; readers default it to 1. Position preserves the
// fixture insert order so tool lists render deterministically.
type Requirement struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VehicleID uuid.UUID `gorm:"column:vehicle_id;type:uuid;not null;index:idx_requirements_vehicle_job"`
	JobID     uuid.UUID `gorm:"column:job_id;type:uuid;not null;index:idx_requirements_vehicle_job"`
	ToolID    uuid.UUID `gorm:"column:tool_id;type:uuid;not null"`
	Qty       *int      `gorm:"column:qty"`
	Notes     *string   `gorm:"column:notes"`
	Position  int       `gorm:"column:position;not null;default:0"`
	Tool      *Tool     `gorm:"foreignKey:ToolID"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
