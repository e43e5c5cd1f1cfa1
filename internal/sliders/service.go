package sliders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db/models"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
)

// Service exposes homepage slider management.
type Service interface {
	List(ctx context.Context, activeOnly bool) ([]models.SliderItem, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SliderItem, error)
	Create(ctx context.Context, input CreateSliderInput) (*models.SliderItem, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSliderInput) (*models.SliderItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService builds the slider service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("slider repository required")
	}
	return &service{repo: repo}, nil
}

// CreateSliderInput carries the fields needed to create a slider item.
type CreateSliderInput struct {
	Title     string
	Subtitle  *string
	ImageURL  string
	LinkURL   *string
	SortOrder int
	IsActive  bool
}

// UpdateSliderInput carries optional field updates; nil means unchanged.
type UpdateSliderInput struct {
	Title     *string
	Subtitle  *string
	ImageURL  *string
	LinkURL   *string
	SortOrder *int
	IsActive  *bool
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]models.SliderItem, error) {
	items, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list slider items")
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.SliderItem, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slider id required")
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "slider item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load slider item")
	}
	return item, nil
}

func (s *service) Create(ctx context.Context, input CreateSliderInput) (*models.SliderItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slider title required")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slider image url required")
	}

	item := &models.SliderItem{
		Title:     title,
		Subtitle:  input.Subtitle,
		ImageURL:  strings.TrimSpace(input.ImageURL),
		LinkURL:   input.LinkURL,
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create slider item")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateSliderInput) (*models.SliderItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "slider title must not be empty")
		}
		item.Title = title
	}
	if input.Subtitle != nil {
		item.Subtitle = input.Subtitle
	}
	if input.ImageURL != nil {
		imageURL := strings.TrimSpace(*input.ImageURL)
		if imageURL == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "slider image url must not be empty")
		}
		item.ImageURL = imageURL
	}
	if input.LinkURL != nil {
		item.LinkURL = input.LinkURL
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update slider item")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete slider item")
	}
	return nil
}
