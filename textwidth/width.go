// Package textwidth measures the terminal display width of strings.
//
// Width is counted in terminal columns: escape sequences contribute
// nothing, combining marks attach to their base, and East Asian wide
// characters and emoji occupy two columns. Measurement iterates by
// grapheme cluster so that multi-code-point glyphs (flag pairs, skin
// tone sequences, ZWJ families) are counted once.
package textwidth

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Escape scanner states. Only stateNormal accumulates visible text.
type scanState int

const (
	stateNormal scanState = iota
	stateEscape           // seen ESC, deciding what follows
	stateCSI              // inside ESC [ ... final byte 0x40-0x7E
	stateOSC              // inside ESC ] ... BEL or ESC \
)

const (
	escRune = '\x1b'
	belRune = '\x07'
)

// scan walks s in a single pass, calling visible for each maximal run of
// displayable text and escape for each complete or truncated escape
// sequence. Unterminated CSI/OSC sequences consume the remainder of the
// string. A bare ESC that introduces no recognized sequence is reported
// as a one-rune escape and the following rune is reprocessed as normal
// text.
func scan(s string, visible func(string), escape func(string)) {
	runes := []rune(s)
	state := stateNormal
	segStart := 0 // start of the current run in runes

	flushVisible := func(end int) {
		if end > segStart {
			visible(string(runes[segStart:end]))
		}
	}
	flushEscape := func(end int) {
		if escape != nil && end > segStart {
			escape(string(runes[segStart:end]))
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch state {
		case stateNormal:
			if r == escRune {
				flushVisible(i)
				segStart = i
				state = stateEscape
			}
		case stateEscape:
			switch r {
			case '[':
				state = stateCSI
			case ']':
				state = stateOSC
			default:
				// Lone ESC: zero width on its own, and the rune that
				// followed it is ordinary text again.
				flushEscape(i)
				segStart = i
				state = stateNormal
				i--
			}
		case stateCSI:
			if r >= 0x40 && r <= 0x7e {
				flushEscape(i + 1)
				segStart = i + 1
				state = stateNormal
			}
		case stateOSC:
			switch {
			case r == belRune:
				flushEscape(i + 1)
				segStart = i + 1
				state = stateNormal
			case r == escRune && i+1 < len(runes) && runes[i+1] == '\\':
				i++
				flushEscape(i + 1)
				segStart = i + 1
				state = stateNormal
			}
		}
	}

	if state == stateNormal {
		flushVisible(len(runes))
	} else {
		flushEscape(len(runes))
	}
}

// String returns the number of terminal columns s occupies when printed.
// ANSI CSI and OSC sequences count as zero width, including any payload
// inside an OSC (hyperlink URLs are not visible text). The result is
// never negative.
func String(s string) int {
	total := 0
	scan(s, func(seg string) {
		total += segmentWidth(seg)
	}, nil)
	return total
}

// StripANSI returns s with every escape sequence removed, leaving only
// the text a terminal would display.
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	scan(s, func(seg string) {
		b.WriteString(seg)
	}, nil)
	return b.String()
}

// segmentWidth measures escape-free text by grapheme cluster.
func segmentWidth(seg string) int {
	total := 0
	g := uniseg.NewGraphemes(seg)
	for g.Next() {
		total += clusterWidth(g.Runes())
	}
	return total
}
