package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product represents a storefront catalog listing.
type Product struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string              `gorm:"column:name;not null" json:"name"`
	Slug          string              `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Description   *string             `gorm:"column:description" json:"description,omitempty"`
	SKU           string              `gorm:"column:sku;not null" json:"sku"`
	Price         decimal.Decimal     `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	SalePrice     decimal.NullDecimal `gorm:"column:sale_price;type:numeric(12,2)" json:"sale_price,omitempty"`
	StockQuantity int                 `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	CategoryID    *uuid.UUID          `gorm:"column:category_id;type:uuid" json:"category_id,omitempty"`
	Category      *Category           `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images        pq.StringArray      `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]" json:"images"`
	IsActive      bool                `gorm:"column:is_active;not null;default:true" json:"is_active"`
	IsFeatured    bool                `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// EffectivePrice returns the sale price when present and lower than the
// regular price, otherwise the regular price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice.Valid && p.SalePrice.Decimal.LessThan(p.Price) {
		return p.SalePrice.Decimal
	}
	return p.Price
}
