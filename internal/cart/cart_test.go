package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func line(id uuid.UUID, price string, qty int) Line {
	return Line{
		ProductID: id,
		Name:      "item",
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestAddItemMergesQuantities(t *testing.T) {
	productID := uuid.New()
	c := NewCart("s1")

	c.AddItem(line(productID, "100.00", 2))
	c.AddItem(line(productID, "100.00", 3))

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", c.Lines[0].Quantity)
	}
}

func TestAddItemZeroQuantityIsNoOp(t *testing.T) {
	c := NewCart("s1")
	c.AddItem(line(uuid.New(), "50.00", 0))
	c.AddItem(line(uuid.New(), "50.00", -2))
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %d lines", len(c.Lines))
	}
}

func TestAddItemRefreshesPriceSnapshot(t *testing.T) {
	productID := uuid.New()
	c := NewCart("s1")

	c.AddItem(line(productID, "100.00", 1))
	c.AddItem(line(productID, "80.00", 1))

	if !c.Lines[0].Price.Equal(decimal.RequireFromString("80.00")) {
		t.Fatalf("expected refreshed price 80.00, got %s", c.Lines[0].Price)
	}
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	productID := uuid.New()
	c := NewCart("s1")
	c.AddItem(line(productID, "100.00", 2))

	if !c.UpdateQuantity(productID, 0) {
		t.Fatal("expected update to find the line")
	}
	if !c.IsEmpty() {
		t.Fatal("expected line to be removed")
	}
}

func TestUpdateQuantityMissingProduct(t *testing.T) {
	c := NewCart("s1")
	if c.UpdateQuantity(uuid.New(), 3) {
		t.Fatal("expected false for unknown product")
	}
}

func TestRemoveItem(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	c := NewCart("s1")
	c.AddItem(line(first, "10.00", 1))
	c.AddItem(line(second, "20.00", 1))

	if !c.RemoveItem(first) {
		t.Fatal("expected removal to succeed")
	}
	if len(c.Lines) != 1 || c.Lines[0].ProductID != second {
		t.Fatalf("unexpected lines after removal: %+v", c.Lines)
	}
	if c.RemoveItem(first) {
		t.Fatal("expected second removal to fail")
	}
}

func TestTotals(t *testing.T) {
	c := NewCart("s1")
	c.AddItem(line(uuid.New(), "100.00", 2))
	c.AddItem(line(uuid.New(), "550.50", 2))

	if got := c.TotalItems(); got != 4 {
		t.Fatalf("total items = %d, want 4", got)
	}
	want := decimal.RequireFromString("1301.00")
	if !c.TotalPrice().Equal(want) {
		t.Fatalf("total price = %s, want %s", c.TotalPrice(), want)
	}

	c.Clear()
	if !c.TotalPrice().IsZero() || c.TotalItems() != 0 {
		t.Fatal("expected zero totals after clear")
	}
}
