package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Wireless Mouse", "wireless-mouse"},
		{"  Gaming   Laptop!  ", "gaming-laptop"},
		{"USB-C Hub (7 in 1)", "usb-c-hub-7-in-1"},
		{"---", ""},
		{"Déjà Vu", "déjà-vu"},
	}
	for _, tt := range tests {
		if got := Make(tt.in); got != tt.want {
			t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
