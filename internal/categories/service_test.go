package categories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/db/models"
	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
)

type stubRepo struct {
	byID    map[uuid.UUID]*models.Category
	bySlug  map[string]*models.Category
	deleted []uuid.UUID
}

func newStubRepo(categories ...*models.Category) *stubRepo {
	r := &stubRepo{
		byID:   map[uuid.UUID]*models.Category{},
		bySlug: map[string]*models.Category{},
	}
	for _, c := range categories {
		r.byID[c.ID] = c
		r.bySlug[c.Slug] = c
	}
	return r
}

func (r *stubRepo) Create(_ context.Context, c *models.Category) (*models.Category, error) {
	c.ID = uuid.New()
	r.byID[c.ID] = c
	r.bySlug[c.Slug] = c
	return c, nil
}

func (r *stubRepo) Update(_ context.Context, c *models.Category) (*models.Category, error) {
	r.byID[c.ID] = c
	r.bySlug[c.Slug] = c
	return c, nil
}

func (r *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	delete(r.byID, id)
	return nil
}

func (r *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	if c, ok := r.bySlug[slug]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) List(_ context.Context, activeOnly bool) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range r.byID {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

type stubCounter struct {
	counts map[uuid.UUID]int64
}

func (s *stubCounter) CountByCategory(_ context.Context, id uuid.UUID) (int64, error) {
	return s.counts[id], nil
}

func newTestService(t *testing.T, repo *stubRepo, counter *stubCounter) Service {
	t.Helper()
	if counter == nil {
		counter = &stubCounter{counts: map[uuid.UUID]int64{}}
	}
	svc, err := NewService(repo, counter)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCreateGeneratesSlug(t *testing.T) {
	svc := newTestService(t, newStubRepo(), nil)

	category, err := svc.Create(context.Background(), CreateCategoryInput{Name: "Gaming Laptops", IsActive: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if category.Slug != "gaming-laptops" {
		t.Fatalf("slug = %q, want gaming-laptops", category.Slug)
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	existing := &models.Category{ID: uuid.New(), Name: "Gaming Laptops", Slug: "gaming-laptops"}
	svc := newTestService(t, newStubRepo(existing), nil)

	_, err := svc.Create(context.Background(), CreateCategoryInput{Name: "Gaming   Laptops"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestCreateEmptyName(t *testing.T) {
	svc := newTestService(t, newStubRepo(), nil)

	_, err := svc.Create(context.Background(), CreateCategoryInput{Name: "   "})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestUpdateRenameKeepsOwnSlug(t *testing.T) {
	existing := &models.Category{ID: uuid.New(), Name: "Gaming Laptops", Slug: "gaming-laptops"}
	repo := newStubRepo(existing)
	svc := newTestService(t, repo, nil)

	name := "Gaming Laptops"
	if _, err := svc.Update(context.Background(), existing.ID, UpdateCategoryInput{Name: &name}); err != nil {
		t.Fatalf("renaming to the same slug should succeed: %v", err)
	}

	name = "Office Laptops"
	updated, err := svc.Update(context.Background(), existing.ID, UpdateCategoryInput{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Slug != "office-laptops" {
		t.Fatalf("slug = %q, want office-laptops", updated.Slug)
	}
}

func TestDeleteRefusedWhenProductsExist(t *testing.T) {
	existing := &models.Category{ID: uuid.New(), Name: "Accessories", Slug: "accessories"}
	repo := newStubRepo(existing)
	counter := &stubCounter{counts: map[uuid.UUID]int64{existing.ID: 4}}
	svc := newTestService(t, repo, counter)

	err := svc.Delete(context.Background(), existing.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("category must not be deleted while products reference it")
	}
}

func TestDeleteEmptyCategory(t *testing.T) {
	existing := &models.Category{ID: uuid.New(), Name: "Accessories", Slug: "accessories"}
	repo := newStubRepo(existing)
	svc := newTestService(t, repo, nil)

	if err := svc.Delete(context.Background(), existing.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected one deletion, got %d", len(repo.deleted))
	}
}

func TestGetUnknownCategory(t *testing.T) {
	svc := newTestService(t, newStubRepo(), nil)

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
