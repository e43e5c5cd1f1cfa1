package models

import (
	"time"

	"github.com/google/uuid"
)

// SliderItem is a homepage hero banner entry, rendered in SortOrder.
type SliderItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Subtitle  *string   `gorm:"column:subtitle" json:"subtitle,omitempty"`
	ImageURL  string    `gorm:"column:image_url;not null" json:"image_url"`
	LinkURL   *string   `gorm:"column:link_url" json:"link_url,omitempty"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
