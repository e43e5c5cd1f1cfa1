package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// District is a delivery zone with a flat delivery charge. The charge is
// snapshotted into each order at creation time.
type District struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string          `gorm:"column:name;not null" json:"name"`
	DeliveryCharge decimal.Decimal `gorm:"column:delivery_charge;type:numeric(12,2);not null" json:"delivery_charge"`
	IsActive       bool            `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
