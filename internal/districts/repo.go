package districts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db/models"
)

// Repository exposes delivery district persistence.
type Repository interface {
	Create(ctx context.Context, district *models.District) (*models.District, error)
	Update(ctx context.Context, district *models.District) (*models.District, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.District, error)
	List(ctx context.Context, activeOnly bool) ([]models.District, error)
	CountOrders(ctx context.Context, districtID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a district repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, district *models.District) (*models.District, error) {
	if err := r.db.WithContext(ctx).Create(district).Error; err != nil {
		return nil, err
	}
	return district, nil
}

func (r *repository) Update(ctx context.Context, district *models.District) (*models.District, error) {
	if err := r.db.WithContext(ctx).Save(district).Error; err != nil {
		return nil, err
	}
	return district, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.District{}, "id = ?", id).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.District, error) {
	var district models.District
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&district).Error; err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]models.District, error) {
	query := r.db.WithContext(ctx).Model(&models.District{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var districts []models.District
	if err := query.Order("name ASC").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *repository) CountOrders(ctx context.Context, districtID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("district_id = ?", districtID).
		Count(&count).Error
	return count, err
}
