package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a single year/make/model/engine combination from the catalog.
// Rows are written once during seeding and never mutated.
type Vehicle struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Year      int       `gorm:"column:year;not null"`
	Make      string    `gorm:"column:make;not null"`
	Model     string    `gorm:"column:model;not null"`
	Engine    string    `gorm:"column:engine;not null"`
	Trim      *string   `gorm:"column:trim"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
