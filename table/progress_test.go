package table

import (
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name           string
		current, total float64
		width          int
		wantFilled     int
		wantLabel      string
	}{
		{"thirty percent", 3, 10, 10, 3, "30%"},
		{"zero", 0, 10, 10, 0, "0%"},
		{"complete", 10, 10, 10, 10, "100%"},
		{"over total clamps", 15, 10, 10, 10, "100%"},
		{"negative current clamps", -3, 10, 10, 0, "0%"},
		{"zero total", 5, 0, 10, 0, "0%"},
		{"negative total", 5, -1, 10, 0, "0%"},
		{"floor not round", 1, 3, 10, 3, "33%"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ProgressBar(tc.current, tc.total, tc.width)

			if filled := strings.Count(got, "█"); filled != tc.wantFilled {
				t.Errorf("filled cells = %d, want %d: %q", filled, tc.wantFilled, got)
			}
			if empty := strings.Count(got, "░"); empty != tc.width-tc.wantFilled {
				t.Errorf("empty cells = %d, want %d: %q", empty, tc.width-tc.wantFilled, got)
			}
			if !strings.Contains(got, tc.wantLabel) {
				t.Errorf("label missing %q: %q", tc.wantLabel, got)
			}
		})
	}
}

func TestProgressBar_DefaultWidth(t *testing.T) {
	got := ProgressBar(1, 2, 0)
	cells := strings.Count(got, "█") + strings.Count(got, "░")
	if cells != DefaultBarWidth {
		t.Errorf("bar cells = %d, want %d", cells, DefaultBarWidth)
	}
}
