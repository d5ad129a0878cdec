package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tool is a catalog entry. Multiple rows may share a name and differ only by
// size/drive (e.g. "Socket" 19mm vs 21mm); the ID is the real discriminator.
type Tool struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string           `gorm:"column:name;not null"`
	Brand     *string          `gorm:"column:brand"`
	Size      *string          `gorm:"column:size"`
	Drive     *string          `gorm:"column:drive"`
	Spec      *string          `gorm:"column:spec"`
	Notes     *string          `gorm:"column:notes"`
	Price     *decimal.Decimal `gorm:"column:price;type:numeric(10,2)"`
	BuyURL    *string          `gorm:"column:buy_url"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
