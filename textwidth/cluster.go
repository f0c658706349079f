package textwidth

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	vs15 = '︎' // text presentation selector
	vs16 = '️' // emoji presentation selector
	zwj  = '‍'
)

// clusterWidth returns the column width of a single grapheme cluster.
//
// The rules, in precedence order:
//  1. A variation selector decides presentation: VS16 forces wide (2),
//     VS15 forces narrow (1).
//  2. A regional-indicator pair is one flag glyph of width 2; a lone
//     regional indicator is width 1.
//  3. A ZWJ sequence renders as a single glyph, so it takes the width
//     of its first visible member.
//  4. A skin-tone modifier attaches to its base rather than adding
//     width of its own.
//  5. Otherwise member widths add up. Combining marks and format
//     characters contribute 0, which makes an accented letter width 1
//     and a consonant-virama-consonant conjunct the sum of its
//     consonants.
func clusterWidth(runes []rune) int {
	hasZWJ := false
	hasVS15, hasVS16 := false, false
	regionals := 0
	for _, r := range runes {
		switch {
		case r == vs16:
			hasVS16 = true
		case r == vs15:
			hasVS15 = true
		case r == zwj:
			hasZWJ = true
		case isRegionalIndicator(r):
			regionals++
		}
	}

	// Variation selectors pick the presentation of a base character; a
	// selector with nothing to attach to is just a format character.
	if len(runes) > 1 {
		if hasVS16 {
			return 2
		}
		if hasVS15 {
			return 1
		}
	}

	if regionals >= 2 {
		return 2
	}
	if regionals == 1 {
		return 1
	}

	if hasZWJ || hasEmojiModifier(runes) {
		for _, r := range runes {
			if w := memberWidth(r); w > 0 {
				return w
			}
		}
		return 0
	}

	total := 0
	for _, r := range runes {
		total += memberWidth(r)
	}
	return total
}

// memberWidth is the width of one code point inside a cluster: the
// East-Asian-Width classification from go-runewidth, with the zero-width
// set applied first. Nonspacing and enclosing marks (virama, Arabic
// harakat, Thai tone marks) attach to their base and occupy no column
// of their own, regardless of how runewidth classifies them.
func memberWidth(r rune) int {
	if isZeroWidth(r) {
		return 0
	}
	if unicode.In(r, unicode.Mn, unicode.Me) {
		return 0
	}
	return runewidth.RuneWidth(r)
}

func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

func hasEmojiModifier(runes []rune) bool {
	for _, r := range runes {
		if r >= 0x1F3FB && r <= 0x1F3FF {
			return true
		}
	}
	return false
}

// isZeroWidth reports code points that never occupy a column: controls,
// joiners and other format characters, variation selectors, and
// surrogate code points with no valid assignment.
func isZeroWidth(r rune) bool {
	switch {
	case r < 0x20: // C0 controls
		return true
	case r == 0x7F: // DEL
		return true
	case r >= 0x80 && r <= 0x9F: // C1 controls
		return true
	case r == 0xAD: // soft hyphen
		return true
	case r >= 0x0600 && r <= 0x0605: // Arabic number signs
		return true
	case r == 0x061C: // Arabic letter mark
		return true
	case r == 0x06DD: // Arabic end of ayah
		return true
	case r == 0x070F: // Syriac abbreviation mark
		return true
	case r == 0x08E2: // Arabic disputed end of ayah
		return true
	case r == 0x180E: // Mongolian vowel separator
		return true
	case r >= 0x200B && r <= 0x200F: // ZWSP, ZWNJ, ZWJ, LRM, RLM
		return true
	case r >= 0x2060 && r <= 0x2064: // word joiner, invisible operators
		return true
	case r >= 0x206A && r <= 0x206F: // deprecated format characters
		return true
	case r >= 0xD800 && r <= 0xDFFF: // surrogates
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r == 0xFEFF: // BOM / zero-width no-break space
		return true
	case r >= 0xE0000 && r <= 0xE007F: // tags
		return true
	case r >= 0xE0100 && r <= 0xE01EF: // variation selectors supplement
		return true
	}
	return false
}
