package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mrokonuzzaman040/techpinik-sub000/internal/catalog"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db/models"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/enums"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/types"
)

// Service exposes order placement and management.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	List(ctx context.Context, filter ListFilter) ([]models.Order, *types.Pagination, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type districtLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.District, error)
}

type service struct {
	repo      Repository
	products  catalog.Repository
	districts districtLoader
	tx        txRunner
	logg      *logger.Logger
	now       func() time.Time
}

// NewService builds the order service.
func NewService(repo Repository, products catalog.Repository, districts districtLoader, tx txRunner, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if districts == nil {
		return nil, fmt.Errorf("district loader required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:      repo,
		products:  products,
		districts: districts,
		tx:        tx,
		logg:      logg,
		now:       time.Now,
	}, nil
}

// CreateOrderItemInput is one requested order line.
type CreateOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput carries a checkout request.
type CreateOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	DistrictID      uuid.UUID
	Notes           *string
	Items           []CreateOrderItemInput
}

// UpdateOrderInput carries optional admin updates; nil means unchanged.
type UpdateOrderInput struct {
	Status          *enums.OrderStatus
	PaymentStatus   *enums.PaymentStatus
	CustomerName    *string
	CustomerPhone   *string
	CustomerAddress *string
	DistrictID      *uuid.UUID
	Notes           *string
}

// Create validates the checkout request, snapshots prices and the delivery
// charge, and writes the order, its items, and the stock decrements in one
// transaction. Any failed line aborts the whole order.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	district, err := s.loadDistrict(ctx, input.DistrictID)
	if err != nil {
		return nil, err
	}
	if !district.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "district is not available for delivery")
	}

	order := &models.Order{
		OrderNumber:     GenerateOrderNumber(s.now()),
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerAddress: strings.TrimSpace(input.CustomerAddress),
		DistrictID:      district.ID,
		DeliveryCharge:  district.DeliveryCharge,
		Status:          enums.OrderStatusPending,
		PaymentStatus:   enums.PaymentStatusPending,
		Notes:           input.Notes,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		orderRepo := s.repo.WithTx(tx)
		productRepo := s.products.WithTx(tx)

		subtotal := decimal.Zero
		items := make([]models.OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
						WithDetails(map[string]any{"product_id": line.ProductID})
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
			}
			if !product.IsActive {
				return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("product %q is not available", product.Name))
			}

			affected, err := productRepo.DecrementStock(ctx, product.ID, line.Quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
			}
			if affected == 0 {
				return pkgerrors.New(pkgerrors.CodeStock, fmt.Sprintf("insufficient stock for %q", product.Name)).
					WithDetails(map[string]any{
						"product_id": product.ID,
						"available":  product.StockQuantity,
						"requested":  line.Quantity,
					})
			}

			unitPrice := product.EffectivePrice()
			lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			subtotal = subtotal.Add(lineTotal)
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   unitPrice,
				TotalPrice:  lineTotal,
			})
		}

		order.Subtotal = subtotal
		order.TotalAmount = subtotal.Add(order.DeliveryCharge)

		if _, err := orderRepo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := orderRepo.CreateItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.District = district
	ctx = s.logg.WithOrderNumber(ctx, order.OrderNumber)
	s.logg.Info(ctx, "order placed")
	return order, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order number required")
	}
	order, err := s.repo.FindByNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]models.Order, *types.Pagination, error) {
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, filter.Pagination.Build(total), nil
}

// Update applies admin edits. Status changes must follow the transition
// graph; a district change resnapshots the delivery charge and recomputes
// the total from the stored subtotal.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		next := *input.Status
		if !next.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
		}
		if next != order.Status {
			if !order.Status.CanTransitionTo(next) {
				return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
					fmt.Sprintf("cannot move order from %s to %s", order.Status, next))
			}
			order.Status = next
		}
	}
	if input.PaymentStatus != nil {
		if !input.PaymentStatus.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment status")
		}
		order.PaymentStatus = *input.PaymentStatus
	}
	if input.CustomerName != nil {
		name := strings.TrimSpace(*input.CustomerName)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name must not be empty")
		}
		order.CustomerName = name
	}
	if input.CustomerPhone != nil {
		phone := strings.TrimSpace(*input.CustomerPhone)
		if phone == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer phone must not be empty")
		}
		order.CustomerPhone = phone
	}
	if input.CustomerAddress != nil {
		address := strings.TrimSpace(*input.CustomerAddress)
		if address == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer address must not be empty")
		}
		order.CustomerAddress = address
	}
	if input.DistrictID != nil && *input.DistrictID != order.DistrictID {
		district, err := s.loadDistrict(ctx, *input.DistrictID)
		if err != nil {
			return nil, err
		}
		order.DistrictID = district.ID
		order.District = district
		order.DeliveryCharge = district.DeliveryCharge
		order.TotalAmount = order.Subtotal.Add(district.DeliveryCharge)
	}
	if input.Notes != nil {
		order.Notes = input.Notes
	}

	updated, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
	}
	updated.Items = order.Items
	updated.District = order.District

	ctx = s.logg.WithOrderNumber(ctx, updated.OrderNumber)
	s.logg.Info(ctx, "order updated")
	return updated, nil
}

// Delete removes an order and its items. Stock is not restored; cancelled
// inventory adjustments are a manual admin action.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, order.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
	}
	ctx = s.logg.WithOrderNumber(ctx, order.OrderNumber)
	s.logg.Info(ctx, "order deleted")
	return nil
}

func (s *service) loadDistrict(ctx context.Context, id uuid.UUID) (*models.District, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "district id required")
	}
	district, err := s.districts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "district does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load district")
	}
	return district, nil
}

func validateCreateInput(input CreateOrderInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer name required")
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer phone required")
	}
	if strings.TrimSpace(input.CustomerAddress) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer address required")
	}
	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	seen := make(map[uuid.UUID]struct{}, len(input.Items))
	for _, line := range input.Items {
		if line.ProductID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "order item product id required")
		}
		if line.Quantity < 1 {
			return pkgerrors.New(pkgerrors.CodeValidation, "order item quantity must be at least 1")
		}
		if _, dup := seen[line.ProductID]; dup {
			return pkgerrors.New(pkgerrors.CodeValidation, "order contains duplicate products")
		}
		seen[line.ProductID] = struct{}{}
	}
	return nil
}
