package pagination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Params
		wantPage  int
		wantLimit int
	}{
		{"zero values", Params{}, 1, DefaultLimit},
		{"negative page", Params{Page: -3, Limit: 10}, 1, 10},
		{"limit above max", Params{Page: 2, Limit: 500}, 2, MaxLimit},
		{"already valid", Params{Page: 4, Limit: 25}, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Fatalf("got %+v, want page=%d limit=%d", got, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 3, Limit: 20}).Offset(); got != 40 {
		t.Fatalf("offset = %d, want 40", got)
	}
	if got := (Params{}).Offset(); got != 0 {
		t.Fatalf("offset = %d, want 0", got)
	}
}

func TestBuild(t *testing.T) {
	p := (Params{Page: 1, Limit: 20}).Build(45)
	if p.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", p.TotalPages)
	}
	if p.Total != 45 {
		t.Fatalf("total = %d, want 45", p.Total)
	}

	empty := (Params{}).Build(0)
	if empty.TotalPages != 1 {
		t.Fatalf("total pages for empty set = %d, want 1", empty.TotalPages)
	}
}
