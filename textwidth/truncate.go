package textwidth

import (
	"strings"

	"github.com/rivo/uniseg"
)

const sgrReset = "\x1b[0m"

// Truncate shortens s so its display width does not exceed max,
// appending tail (typically "…" or "...") when anything was cut. The
// tail's own width comes out of the budget first, so the result always
// measures at most max columns. Cuts land on grapheme boundaries: a
// flag pair or ZWJ sequence is either kept whole or dropped whole.
//
// Escape sequences seen before the cut point are preserved, and a reset
// is appended after the tail when any were kept so truncation cannot
// leak color state into following output.
//
// When max is smaller than the tail's own width the result is the bare
// tail, which may exceed max; callers wanting a hard cap should pass an
// empty tail at tiny widths.
func Truncate(s string, max int, tail string) string {
	if max < 0 {
		max = 0
	}
	if String(s) <= max {
		return s
	}

	budget := max - String(tail)
	if budget < 0 {
		budget = 0
	}

	var b strings.Builder
	used := 0
	full := false
	sawEscape := false

	scan(s, func(seg string) {
		if full {
			return
		}
		g := uniseg.NewGraphemes(seg)
		for g.Next() {
			w := clusterWidth(g.Runes())
			if used+w > budget {
				full = true
				return
			}
			b.WriteString(g.Str())
			used += w
		}
	}, func(esc string) {
		if full {
			return
		}
		sawEscape = true
		b.WriteString(esc)
	})

	b.WriteString(tail)
	if sawEscape {
		b.WriteString(sgrReset)
	}
	return b.String()
}
