package tracker

import "testing"

func TestIntOr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "245", 245},
		{"plus sign stripped", "+12", 12},
		{"comma stripped", "1,234", 1234},
		{"percent stripped", "72%", 72},
		{"whitespace", "  18 ", 18},
		{"non-numeric", "N/A", 0},
		{"empty", "", 0},
		{"float text", "1.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intOr(tt.in, 0); got != tt.want {
				t.Errorf("intOr(%q, 0) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloatOr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain", "1.50", 1.5},
		{"integer text", "156", 156},
		{"percent stripped", "28.4%", 28.4},
		{"plus sign stripped", "+0.8", 0.8},
		{"non-numeric", "N/A", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := floatOr(tt.in, 0); got != tt.want {
				t.Errorf("floatOr(%q, 0) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextOr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"verbatim", "+12", "+12"},
		{"trimmed", "  N/A ", "N/A"},
		{"empty falls back", "", "?"},
		{"whitespace falls back", "   ", "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textOr(tt.in, "?"); got != tt.want {
				t.Errorf("textOr(%q, \"?\") = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "13", 13},
		{"trailing text", "13 rounds", 13},
		{"whitespace", "  7 ", 7},
		{"no digits", "abc", 0},
		{"empty", "", 0},
		{"digits after text", "round 13", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := leadingInt(tt.in); got != tt.want {
				t.Errorf("leadingInt(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
