package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blackwell-systems/termgrid/ansi"
	"github.com/blackwell-systems/termgrid/table"
)

// parseHSL turns a "hue,sat,light" flag value into an opening escape
// sequence. Range checking is the encoder's job; it clamps.
func parseHSL(spec string) (string, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return "", fmt.Errorf("want 'hue,sat,light', got %q", spec)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return "", fmt.Errorf("invalid component %q in %q", p, spec)
		}
		vals[i] = v
	}
	return ansi.ForegroundHSL(vals[0], vals[1], vals[2]), nil
}

// colorFromFlag resolves a color flag with a config triple as fallback.
// Empty flag and empty config mean no color.
func colorFromFlag(flag string, fallback []float64) (string, error) {
	if flag != "" {
		return parseHSL(flag)
	}
	if len(fallback) == 3 {
		return ansi.ForegroundHSL(fallback[0], fallback[1], fallback[2]), nil
	}
	return "", nil
}

// parseAlign maps alignment letters to per-column policies: l, c, r.
func parseAlign(spec string) ([]table.Align, error) {
	align := make([]table.Align, 0, len(spec))
	for _, c := range spec {
		switch c {
		case 'l', 'L':
			align = append(align, table.AlignLeft)
		case 'c', 'C':
			align = append(align, table.AlignCenter)
		case 'r', 'R':
			align = append(align, table.AlignRight)
		default:
			return nil, fmt.Errorf("invalid alignment letter %q in %q (want l, c, or r)", c, spec)
		}
	}
	return align, nil
}
