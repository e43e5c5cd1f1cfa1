package districts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db/models"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
)

// Service exposes delivery district management.
type Service interface {
	List(ctx context.Context, activeOnly bool) ([]models.District, error)
	Get(ctx context.Context, id uuid.UUID) (*models.District, error)
	Create(ctx context.Context, input CreateDistrictInput) (*models.District, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateDistrictInput) (*models.District, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService builds the district service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("district repository required")
	}
	return &service{repo: repo}, nil
}

// CreateDistrictInput carries the fields needed to create a district.
type CreateDistrictInput struct {
	Name           string
	DeliveryCharge decimal.Decimal
	IsActive       bool
}

// UpdateDistrictInput carries optional field updates; nil means unchanged.
type UpdateDistrictInput struct {
	Name           *string
	DeliveryCharge *decimal.Decimal
	IsActive       *bool
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]models.District, error) {
	districts, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list districts")
	}
	return districts, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.District, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "district id required")
	}
	district, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "district not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load district")
	}
	return district, nil
}

func (s *service) Create(ctx context.Context, input CreateDistrictInput) (*models.District, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "district name required")
	}
	if input.DeliveryCharge.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery charge must not be negative")
	}

	district := &models.District{
		Name:           name,
		DeliveryCharge: input.DeliveryCharge,
		IsActive:       input.IsActive,
	}
	created, err := s.repo.Create(ctx, district)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create district")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateDistrictInput) (*models.District, error) {
	district, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "district name must not be empty")
		}
		district.Name = name
	}
	if input.DeliveryCharge != nil {
		if input.DeliveryCharge.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery charge must not be negative")
		}
		district.DeliveryCharge = *input.DeliveryCharge
	}
	if input.IsActive != nil {
		district.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, district)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update district")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	district, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.repo.CountOrders(ctx, district.ID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count district orders")
	}
	if count > 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "district has orders and cannot be deleted").
			WithDetails(map[string]any{"order_count": count})
	}

	if err := s.repo.Delete(ctx, district.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete district")
	}
	return nil
}
