package table

import (
	"fmt"
	"strings"
)

// DefaultBarWidth is used when ProgressBar is given a non-positive width.
const DefaultBarWidth = 20

// ProgressBar renders a fixed-width bar with a right-justified
// percentage label. Example: "███░░░░░░░  30%".
//
// filled is floor(width * current/total), clamped to [0, width]; a
// non-positive total yields an empty bar at 0%.
func ProgressBar(current, total float64, width int) string {
	if width <= 0 {
		width = DefaultBarWidth
	}

	ratio := 0.0
	if total > 0 {
		ratio = current / total
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
	}

	filled := int(ratio * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3.0f%%", bar, ratio*100)
}
