package common

import "testing"

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "first non-zero wins", values: []string{"", "vs_main", "fs_main"}, want: "vs_main"},
		{name: "all zero returns zero", values: []string{"", ""}, want: ""},
		{name: "no values returns zero", values: nil, want: ""},
		{name: "leading non-zero", values: []string{"main", ""}, want: "main"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coalesce(tt.values...); got != tt.want {
				t.Errorf("Coalesce(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{name: "inside range unchanged", v: 0.5, lo: 0, hi: 1, want: 0.5},
		{name: "below lower bound", v: -0.25, lo: 0, hi: 1, want: 0},
		{name: "above upper bound", v: 1.75, lo: 0, hi: 1, want: 1},
		{name: "at lower bound", v: 0, lo: 0, hi: 1, want: 0},
		{name: "at upper bound", v: 1, lo: 0, hi: 1, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}

	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("Clamp(7, 0, 5) = %d, want 5", got)
	}
}
