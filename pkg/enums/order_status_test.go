package enums

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	allowed := map[OrderStatus]map[OrderStatus]bool{
		OrderStatusPending:    {OrderStatusConfirmed: true, OrderStatusCancelled: true},
		OrderStatusConfirmed:  {OrderStatusProcessing: true, OrderStatusCancelled: true},
		OrderStatusProcessing: {OrderStatusShipped: true, OrderStatusCancelled: true},
		OrderStatusShipped:    {OrderStatusDelivered: true},
		OrderStatusDelivered:  {},
		OrderStatusCancelled:  {},
	}

	for _, from := range validOrderStatuses {
		for _, to := range validOrderStatuses {
			got := from.CanTransitionTo(to)
			want := allowed[from][to]
			if got != want {
				t.Errorf("%s -> %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		OrderStatusDelivered: true,
		OrderStatusCancelled: true,
	}
	for _, status := range validOrderStatuses {
		if got := status.IsTerminal(); got != terminal[status] {
			t.Errorf("%s.IsTerminal() = %v, want %v", status, got, terminal[status])
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	if _, err := ParseOrderStatus("pending"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseOrderStatus("delivred"); err == nil {
		t.Fatal("expected error for misspelled status")
	}
	if _, err := ParseOrderStatus(""); err == nil {
		t.Fatal("expected error for empty status")
	}
}
