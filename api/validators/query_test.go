package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/mrokonuzzaman040/techpinik-sub000/pkg/errors"
	"github.com/mrokonuzzaman040/techpinik-sub000/pkg/pagination"
)

func TestPaginationFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?page=3&limit=50", nil)
	params, err := PaginationFromQuery(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Page != 3 || params.Limit != 50 {
		t.Fatalf("got %+v, want page=3 limit=50", params)
	}

	r = httptest.NewRequest("GET", "/api/products", nil)
	params, err = PaginationFromQuery(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Page != 1 || params.Limit != pagination.DefaultLimit {
		t.Fatalf("got %+v, want defaults", params)
	}

	r = httptest.NewRequest("GET", "/api/products?page=abc", nil)
	if _, err = PaginationFromQuery(r); pkgerrors.As(err) == nil {
		t.Fatal("expected validation error for non-numeric page")
	}
}

func TestOptionalBoolQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?featured=true", nil)
	flag, err := OptionalBoolQuery(r, "featured")
	if err != nil || flag == nil || !*flag {
		t.Fatalf("got flag=%v err=%v, want true", flag, err)
	}

	r = httptest.NewRequest("GET", "/api/products", nil)
	flag, err = OptionalBoolQuery(r, "featured")
	if err != nil || flag != nil {
		t.Fatalf("got flag=%v err=%v, want nil", flag, err)
	}

	r = httptest.NewRequest("GET", "/api/products?featured=maybe", nil)
	if _, err = OptionalBoolQuery(r, "featured"); err == nil {
		t.Fatal("expected error for invalid bool")
	}
}

func TestOptionalDateQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/orders?date_from=2026-08-01", nil)
	from, err := OptionalDateQuery(r, "date_from")
	if err != nil || from == nil {
		t.Fatalf("got date=%v err=%v", from, err)
	}
	if from.Year() != 2026 || from.Month() != 8 || from.Day() != 1 {
		t.Fatalf("parsed wrong date: %v", from)
	}

	r = httptest.NewRequest("GET", "/api/orders?date_from=01/08/2026", nil)
	if _, err = OptionalDateQuery(r, "date_from"); err == nil {
		t.Fatal("expected error for unsupported date format")
	}
}

func TestUUIDFromPath(t *testing.T) {
	if _, err := UUIDFromPath("not-a-uuid", "product id"); err == nil {
		t.Fatal("expected error for malformed uuid")
	}
	if _, err := UUIDFromPath("7b0f5ad0-31ae-4c4b-9a6e-2f9f8e8b1c11", "product id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
