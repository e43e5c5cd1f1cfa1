package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db/models"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
)

type stubRepo struct {
	byID    map[uuid.UUID]*models.Product
	deleted []uuid.UUID
}

func newStubRepo(products ...*models.Product) *stubRepo {
	r := &stubRepo{byID: map[uuid.UUID]*models.Product{}}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *stubRepo) WithTx(*gorm.DB) Repository { return r }

func (r *stubRepo) Create(_ context.Context, p *models.Product) (*models.Product, error) {
	p.ID = uuid.New()
	r.byID[p.ID] = p
	return p, nil
}

func (r *stubRepo) Update(_ context.Context, p *models.Product) (*models.Product, error) {
	r.byID[p.ID] = p
	return p, nil
}

func (r *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.byID, id)
	return nil
}

func (r *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) List(_ context.Context, _ ListFilter) ([]models.Product, int64, error) {
	out := make([]models.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubRepo) CountByCategory(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (r *stubRepo) DecrementStock(context.Context, uuid.UUID, int) (int64, error) { return 1, nil }

type stubCategories struct {
	byID map[uuid.UUID]*models.Category
}

func (s *stubCategories) FindByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestService(t *testing.T, repo *stubRepo, cats *stubCategories) Service {
	t.Helper()
	if cats == nil {
		cats = &stubCategories{byID: map[uuid.UUID]*models.Category{}}
	}
	svc, err := NewService(repo, cats)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func validCreateInput() CreateProductInput {
	return CreateProductInput{
		Name:          "Wireless Mouse",
		SKU:           "WM-100",
		Price:         decimal.RequireFromString("550.50"),
		StockQuantity: 20,
		IsActive:      true,
	}
}

func TestCreateProduct(t *testing.T) {
	svc := newTestService(t, newStubRepo(), nil)

	product, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if product.Slug != "wireless-mouse" {
		t.Errorf("slug = %q, want wireless-mouse", product.Slug)
	}
	if product.SalePrice.Valid {
		t.Error("sale price should be null when not provided")
	}
}

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateProductInput)
	}{
		{"empty name", func(in *CreateProductInput) { in.Name = "  " }},
		{"empty sku", func(in *CreateProductInput) { in.SKU = "" }},
		{"negative price", func(in *CreateProductInput) { in.Price = decimal.RequireFromString("-1") }},
		{"negative stock", func(in *CreateProductInput) { in.StockQuantity = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, newStubRepo(), nil)
			input := validCreateInput()
			tt.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestCreateProductUnknownCategory(t *testing.T) {
	svc := newTestService(t, newStubRepo(), nil)

	input := validCreateInput()
	missing := uuid.New()
	input.CategoryID = &missing

	_, err := svc.Create(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestUpdateProductSaleLifecycle(t *testing.T) {
	existing := &models.Product{
		ID:    uuid.New(),
		Name:  "Wireless Mouse",
		Slug:  "wireless-mouse",
		SKU:   "WM-100",
		Price: decimal.RequireFromString("550.50"),
	}
	repo := newStubRepo(existing)
	svc := newTestService(t, repo, nil)

	sale := decimal.RequireFromString("499.00")
	updated, err := svc.Update(context.Background(), existing.ID, UpdateProductInput{SalePrice: &sale})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.SalePrice.Valid || !updated.SalePrice.Decimal.Equal(sale) {
		t.Fatalf("sale price not applied: %+v", updated.SalePrice)
	}
	if !updated.EffectivePrice().Equal(sale) {
		t.Fatalf("effective price = %s, want %s", updated.EffectivePrice(), sale)
	}

	updated, err = svc.Update(context.Background(), existing.ID, UpdateProductInput{ClearSale: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.SalePrice.Valid {
		t.Fatal("sale price should be cleared")
	}
	if !updated.EffectivePrice().Equal(existing.Price) {
		t.Fatalf("effective price = %s, want %s", updated.EffectivePrice(), existing.Price)
	}
}

func TestGetUnknownProduct(t *testing.T) {
	svc := newTestService(t, newStubRepo(), nil)

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	existing := &models.Product{ID: uuid.New(), Name: "Mouse", Slug: "mouse"}
	repo := newStubRepo(existing)
	svc := newTestService(t, repo, nil)

	if err := svc.Delete(context.Background(), existing.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected one deletion, got %d", len(repo.deleted))
	}
}
