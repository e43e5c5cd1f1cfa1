package orders

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mrokonuzzaman040/techpinik-sub000/internal/catalog"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db/models"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/enums"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/logger"
)

type stubOrderRepo struct {
	created      *models.Order
	createdItems []models.OrderItem
	updated      *models.Order
	deleted      []uuid.UUID
	byID         map[uuid.UUID]*models.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byID: map[uuid.UUID]*models.Order{}}
}

func (r *stubOrderRepo) WithTx(*gorm.DB) Repository { return r }

func (r *stubOrderRepo) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	order.ID = uuid.New()
	r.created = order
	r.byID[order.ID] = order
	return order, nil
}

func (r *stubOrderRepo) CreateItems(_ context.Context, items []models.OrderItem) error {
	r.createdItems = items
	return nil
}

func (r *stubOrderRepo) Update(_ context.Context, order *models.Order) (*models.Order, error) {
	r.updated = order
	r.byID[order.ID] = order
	return order, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.byID, id)
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	if order, ok := r.byID[id]; ok {
		return order, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubOrderRepo) FindByNumber(_ context.Context, number string) (*models.Order, error) {
	for _, order := range r.byID {
		if order.OrderNumber == number {
			return order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubOrderRepo) List(_ context.Context, _ ListFilter) ([]models.Order, int64, error) {
	out := make([]models.Order, 0, len(r.byID))
	for _, order := range r.byID {
		out = append(out, *order)
	}
	return out, int64(len(out)), nil
}

type stubProductRepo struct {
	products map[uuid.UUID]*models.Product
	stock    map[uuid.UUID]int
}

func newStubProductRepo(products ...*models.Product) *stubProductRepo {
	r := &stubProductRepo{
		products: map[uuid.UUID]*models.Product{},
		stock:    map[uuid.UUID]int{},
	}
	for _, p := range products {
		r.products[p.ID] = p
		r.stock[p.ID] = p.StockQuantity
	}
	return r
}

func (r *stubProductRepo) WithTx(*gorm.DB) catalog.Repository { return r }

func (r *stubProductRepo) Create(_ context.Context, p *models.Product) (*models.Product, error) {
	return p, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *models.Product) (*models.Product, error) {
	return p, nil
}

func (r *stubProductRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(context.Context, catalog.ListFilter) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (r *stubProductRepo) CountByCategory(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *stubProductRepo) DecrementStock(_ context.Context, id uuid.UUID, qty int) (int64, error) {
	if r.stock[id] < qty {
		return 0, nil
	}
	r.stock[id] -= qty
	return 1, nil
}

type stubDistricts struct {
	districts map[uuid.UUID]*models.District
}

func (s *stubDistricts) FindByID(_ context.Context, id uuid.UUID) (*models.District, error) {
	if d, ok := s.districts[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubTx struct{}

func (stubTx) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func product(name, price string, stock int) *models.Product {
	return &models.Product{
		ID:            uuid.New(),
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		IsActive:      true,
	}
}

func district(charge string, active bool) *models.District {
	return &models.District{
		ID:             uuid.New(),
		Name:           "Dhaka",
		DeliveryCharge: decimal.RequireFromString(charge),
		IsActive:       active,
	}
}

type fixture struct {
	svc       Service
	orders    *stubOrderRepo
	products  *stubProductRepo
	districts *stubDistricts
}

func newFixture(t *testing.T, products []*models.Product, districts ...*models.District) fixture {
	t.Helper()
	orderRepo := newStubOrderRepo()
	productRepo := newStubProductRepo(products...)
	districtStub := &stubDistricts{districts: map[uuid.UUID]*models.District{}}
	for _, d := range districts {
		districtStub.districts[d.ID] = d
	}
	svc, err := NewService(orderRepo, productRepo, districtStub, stubTx{}, testLogger())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return fixture{svc: svc, orders: orderRepo, products: productRepo, districts: districtStub}
}

func validInput(districtID uuid.UUID, items ...CreateOrderItemInput) CreateOrderInput {
	return CreateOrderInput{
		CustomerName:    "Rahim Uddin",
		CustomerPhone:   "01712345678",
		CustomerAddress: "House 12, Road 5, Dhanmondi",
		DistrictID:      districtID,
		Items:           items,
	}
}

func TestCreateOrderComputesTotals(t *testing.T) {
	laptop := product("Laptop Stand", "400.00", 10)
	mouse := product("Wireless Mouse", "500.00", 5)
	dhaka := district("60.00", true)
	f := newFixture(t, []*models.Product{laptop, mouse}, dhaka)

	order, err := f.svc.Create(context.Background(), validInput(dhaka.ID,
		CreateOrderItemInput{ProductID: laptop.ID, Quantity: 2},
		CreateOrderItemInput{ProductID: mouse.ID, Quantity: 1},
	))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !order.Subtotal.Equal(decimal.RequireFromString("1300.00")) {
		t.Errorf("subtotal = %s, want 1300.00", order.Subtotal)
	}
	if !order.DeliveryCharge.Equal(decimal.RequireFromString("60.00")) {
		t.Errorf("delivery charge = %s, want 60.00", order.DeliveryCharge)
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("1360.00")) {
		t.Errorf("total = %s, want 1360.00", order.TotalAmount)
	}
	if order.Status != enums.OrderStatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if order.PaymentStatus != enums.PaymentStatusPending {
		t.Errorf("payment status = %s, want pending", order.PaymentStatus)
	}
	if order.OrderNumber == "" || order.OrderNumber[:3] != "TP-" {
		t.Errorf("unexpected order number %q", order.OrderNumber)
	}
	if len(f.orders.createdItems) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(f.orders.createdItems))
	}
	if f.products.stock[laptop.ID] != 8 || f.products.stock[mouse.ID] != 4 {
		t.Errorf("stock not decremented: laptop=%d mouse=%d",
			f.products.stock[laptop.ID], f.products.stock[mouse.ID])
	}
}

func TestCreateOrderUsesSalePriceSnapshot(t *testing.T) {
	item := product("Keyboard", "100.00", 10)
	item.SalePrice = decimal.NullDecimal{Decimal: decimal.RequireFromString("75.00"), Valid: true}
	dhaka := district("50.00", true)
	f := newFixture(t, []*models.Product{item}, dhaka)

	order, err := f.svc.Create(context.Background(), validInput(dhaka.ID,
		CreateOrderItemInput{ProductID: item.ID, Quantity: 2},
	))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !order.Items[0].UnitPrice.Equal(decimal.RequireFromString("75.00")) {
		t.Errorf("unit price = %s, want 75.00", order.Items[0].UnitPrice)
	}
	if !order.Subtotal.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("subtotal = %s, want 150.00", order.Subtotal)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	scarce := product("Limited Edition", "200.00", 2)
	dhaka := district("60.00", true)
	f := newFixture(t, []*models.Product{scarce}, dhaka)

	_, err := f.svc.Create(context.Background(), validInput(dhaka.ID,
		CreateOrderItemInput{ProductID: scarce.ID, Quantity: 3},
	))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStock {
		t.Fatalf("expected INSUFFICIENT_STOCK, got %v", err)
	}
	if f.orders.created != nil {
		t.Fatal("order must not be created when stock is short")
	}
	if f.products.stock[scarce.ID] != 2 {
		t.Fatalf("stock should be untouched, got %d", f.products.stock[scarce.ID])
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	dhaka := district("60.00", true)
	f := newFixture(t, nil, dhaka)

	_, err := f.svc.Create(context.Background(), validInput(dhaka.ID,
		CreateOrderItemInput{ProductID: uuid.New(), Quantity: 1},
	))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	dhaka := district("60.00", true)
	item := product("Mouse", "100.00", 10)

	tests := []struct {
		name  string
		input CreateOrderInput
	}{
		{"no items", validInput(dhaka.ID)},
		{"zero quantity", validInput(dhaka.ID, CreateOrderItemInput{ProductID: item.ID, Quantity: 0})},
		{"duplicate products", validInput(dhaka.ID,
			CreateOrderItemInput{ProductID: item.ID, Quantity: 1},
			CreateOrderItemInput{ProductID: item.ID, Quantity: 2},
		)},
		{"missing name", func() CreateOrderInput {
			in := validInput(dhaka.ID, CreateOrderItemInput{ProductID: item.ID, Quantity: 1})
			in.CustomerName = " "
			return in
		}()},
		{"missing phone", func() CreateOrderInput {
			in := validInput(dhaka.ID, CreateOrderItemInput{ProductID: item.ID, Quantity: 1})
			in.CustomerPhone = ""
			return in
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, []*models.Product{item}, dhaka)
			_, err := f.svc.Create(context.Background(), tt.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestCreateOrderInactiveDistrict(t *testing.T) {
	item := product("Mouse", "100.00", 10)
	inactive := district("60.00", false)
	f := newFixture(t, []*models.Product{item}, inactive)

	_, err := f.svc.Create(context.Background(), validInput(inactive.ID,
		CreateOrderItemInput{ProductID: item.ID, Quantity: 1},
	))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func placeOrder(t *testing.T, f fixture, districtID, productID uuid.UUID) *models.Order {
	t.Helper()
	order, err := f.svc.Create(context.Background(), validInput(districtID,
		CreateOrderItemInput{ProductID: productID, Quantity: 1},
	))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return order
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	item := product("Mouse", "100.00", 10)
	dhaka := district("60.00", true)
	f := newFixture(t, []*models.Product{item}, dhaka)
	order := placeOrder(t, f, dhaka.ID, item.ID)

	confirmed := enums.OrderStatusConfirmed
	updated, err := f.svc.Update(context.Background(), order.ID, UpdateOrderInput{Status: &confirmed})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != enums.OrderStatusConfirmed {
		t.Fatalf("status = %s, want confirmed", updated.Status)
	}

	// Skipping straight to delivered is not allowed.
	delivered := enums.OrderStatusDelivered
	_, err = f.svc.Update(context.Background(), order.ID, UpdateOrderInput{Status: &delivered})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}
}

func TestUpdateOrderTerminalStatusRejected(t *testing.T) {
	item := product("Mouse", "100.00", 10)
	dhaka := district("60.00", true)
	f := newFixture(t, []*models.Product{item}, dhaka)
	order := placeOrder(t, f, dhaka.ID, item.ID)
	order.Status = enums.OrderStatusDelivered
	f.orders.byID[order.ID] = order

	processing := enums.OrderStatusProcessing
	_, err := f.svc.Update(context.Background(), order.ID, UpdateOrderInput{Status: &processing})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}
}

func TestUpdateOrderSameStatusIsNoOp(t *testing.T) {
	item := product("Mouse", "100.00", 10)
	dhaka := district("60.00", true)
	f := newFixture(t, []*models.Product{item}, dhaka)
	order := placeOrder(t, f, dhaka.ID, item.ID)

	pending := enums.OrderStatusPending
	updated, err := f.svc.Update(context.Background(), order.ID, UpdateOrderInput{Status: &pending})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != enums.OrderStatusPending {
		t.Fatalf("status = %s, want pending", updated.Status)
	}
}

func TestUpdateOrderDistrictChangeRecomputesTotal(t *testing.T) {
	item := product("Mouse", "100.00", 10)
	dhaka := district("60.00", true)
	chittagong := district("120.00", true)
	f := newFixture(t, []*models.Product{item}, dhaka, chittagong)
	order := placeOrder(t, f, dhaka.ID, item.ID)

	updated, err := f.svc.Update(context.Background(), order.ID, UpdateOrderInput{DistrictID: &chittagong.ID})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.DeliveryCharge.Equal(decimal.RequireFromString("120.00")) {
		t.Errorf("delivery charge = %s, want 120.00", updated.DeliveryCharge)
	}
	if !updated.TotalAmount.Equal(decimal.RequireFromString("220.00")) {
		t.Errorf("total = %s, want 220.00", updated.TotalAmount)
	}
	if !updated.Subtotal.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("subtotal = %s, want unchanged 100.00", updated.Subtotal)
	}
}

func TestDeleteOrder(t *testing.T) {
	item := product("Mouse", "100.00", 10)
	dhaka := district("60.00", true)
	f := newFixture(t, []*models.Product{item}, dhaka)
	order := placeOrder(t, f, dhaka.ID, item.ID)

	if err := f.svc.Delete(context.Background(), order.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(f.orders.deleted) != 1 || f.orders.deleted[0] != order.ID {
		t.Fatalf("unexpected deletions: %v", f.orders.deleted)
	}

	err := f.svc.Delete(context.Background(), order.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND for second delete, got %v", err)
	}
}
