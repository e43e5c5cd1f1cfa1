package sliders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db/models"
)

// Repository exposes slider item persistence.
type Repository interface {
	Create(ctx context.Context, item *models.SliderItem) (*models.SliderItem, error)
	Update(ctx context.Context, item *models.SliderItem) (*models.SliderItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.SliderItem, error)
	List(ctx context.Context, activeOnly bool) ([]models.SliderItem, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a slider repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, item *models.SliderItem) (*models.SliderItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *repository) Update(ctx context.Context, item *models.SliderItem) (*models.SliderItem, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.SliderItem{}, "id = ?", id).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.SliderItem, error) {
	var item models.SliderItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]models.SliderItem, error) {
	query := r.db.WithContext(ctx).Model(&models.SliderItem{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var items []models.SliderItem
	if err := query.Order("sort_order ASC, created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
