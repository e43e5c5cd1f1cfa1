package cart

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

// Service exposes the session cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*Cart, error)
	Clear(ctx context.Context, sessionID string) (*Cart, error)
}

type productLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	store    Store
	products productLoader
}

// NewService builds the cart service.
func NewService(store Store, products productLoader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{store: store, products: products}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}
	return s.store.Load(ctx, sessionID)
}

func (s *service) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*Cart, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return cart, nil
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is not available")
	}

	line := Line{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.EffectivePrice(),
		Quantity:  quantity,
	}
	if len(product.Images) > 0 {
		line.ImageURL = product.Images[0]
	}
	cart.AddItem(line)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*Cart, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !cart.UpdateQuantity(productID, quantity) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not in cart")
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*Cart, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !cart.RemoveItem(productID) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not in cart")
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return nil, err
	}
	return NewCart(sessionID), nil
}

func validateSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session required")
	}
	return nil
}
