package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/enums"
)

// Order is a placed customer order. Invariant: TotalAmount equals
// Subtotal + DeliveryCharge at creation time.
type Order struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber     string              `gorm:"column:order_number;not null;uniqueIndex" json:"order_number"`
	CustomerName    string              `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerPhone   string              `gorm:"column:customer_phone;not null" json:"customer_phone"`
	CustomerAddress string              `gorm:"column:customer_address;not null" json:"customer_address"`
	DistrictID      uuid.UUID           `gorm:"column:district_id;type:uuid;not null" json:"district_id"`
	District        *District           `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
	Subtotal        decimal.Decimal     `gorm:"column:subtotal;type:numeric(12,2);not null" json:"subtotal"`
	DeliveryCharge  decimal.Decimal     `gorm:"column:delivery_charge;type:numeric(12,2);not null" json:"delivery_charge"`
	TotalAmount     decimal.Decimal     `gorm:"column:total_amount;type:numeric(12,2);not null" json:"total_amount"`
	Status          enums.OrderStatus   `gorm:"column:status;not null;default:'pending'" json:"status"`
	PaymentStatus   enums.PaymentStatus `gorm:"column:payment_status;not null;default:'pending'" json:"payment_status"`
	Notes           *string             `gorm:"column:notes" json:"notes,omitempty"`
	Items           []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
