package orders

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^TP-20260830-\d{4}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		number := GenerateOrderNumber(now)
		if !pattern.MatchString(number) {
			t.Fatalf("order number %q does not match expected format", number)
		}
		seen[number] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected random suffixes to vary")
	}
}
