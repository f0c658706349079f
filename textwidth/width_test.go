package textwidth

import (
	"strings"
	"testing"
)

func TestString_ASCII(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"hello world", 11},
		{"a b c d", 7},
	}

	for _, tc := range tests {
		if got := String(tc.input); got != tc.want {
			t.Errorf("String(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestString_Unicode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"cjk ideographs", "日本語", 6},
		{"fullwidth latin", "ＡＢ", 4},
		{"hiragana", "ひらがな", 8},
		{"hangul syllables", "한글", 4},
		{"accented via combining mark", "é", 1},
		{"precomposed accent", "é", 1},
		{"word joiner", "\u2060", 0},
		{"zero width space", "\u200B", 0},
		{"zero width joiner alone", "\u200D", 0},
		{"soft hyphen", "\u00AD", 0},
		{"invisible times", "\u2062", 0},
		{"arabic letter mark", "\u061C", 0},
		{"bom", "\uFEFF", 0},
		{"mixed narrow and wide", "ab漢c", 5},
		{"devanagari conjunct", "क्ष", 2},
		{"devanagari virama alone", "\u094D", 0},
		{"arabic fatha on meem", "\u0645\u064E", 1},
		{"thai tone mark", "\u0E01\u0E49", 1},
		{"enclosing circle", "a\u20DD", 1},
		{"tab is control", "\t", 0},
		{"newline is control", "\n", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := String(tc.input); got != tc.want {
				t.Errorf("String(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestString_Emoji(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain emoji", "😀", 2},
		{"flag pair", "🇺🇸", 2},
		{"two flags", "🇺🇸🇯🇵", 4},
		{"lone regional indicator", "\U0001F1FA", 1},
		{"skin tone modifier", "👍🏽", 2},
		{"zwj family", "👨‍👩‍👧", 2},
		{"vs16 forces wide", "❤️", 2},
		{"vs15 forces narrow", "⌚︎", 1},
		{"keycap sequence", "1️⃣", 2},
		{"lone variation selector", "\uFE0F", 0},
		{"emoji between ascii", "a😀b", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := String(tc.input); got != tc.want {
				t.Errorf("String(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestString_ANSISequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"sgr color", "\x1b[31mRed\x1b[0m", 3},
		{"sgr with params", "\x1b[1;38;5;120mbold\x1b[0m", 4},
		{"cursor movement", "\x1b[2Aup", 2},
		{"osc bel terminated", "\x1b]0;window title\x07x", 1},
		{"osc st terminated", "\x1b]0;title\x1b\\x", 1},
		{"osc hyperlink with wide payload", "\x1b]8;;https://例え.jp\x07link\x1b]8;;\x07", 4},
		{"unterminated csi", "ab\x1b[12;3", 2},
		{"unterminated osc", "ab\x1b]0;never ends", 2},
		{"lone esc at end", "abc\x1b", 3},
		{"lone esc mid string", "ab\x1bcd", 4},
		{"esc before escape", "\x1b\x1b[31mhi", 2},
		{"only escapes", "\x1b[0m\x1b[1m", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := String(tc.input); got != tc.want {
				t.Errorf("String(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

// Escapes contribute exactly zero: width(prefix+e+suffix) == width(prefix)+width(suffix).
func TestString_EscapeAdditivity(t *testing.T) {
	escapes := []string{
		"\x1b[31m",
		"\x1b[0m",
		"\x1b[38;5;200m",
		"\x1b]8;;https://example.com\x07",
		"\x1b]0;title\x1b\\",
	}
	prefix, suffix := "日本", "ok"
	want := String(prefix) + String(suffix)

	for _, e := range escapes {
		if got := String(prefix + e + suffix); got != want {
			t.Errorf("String(prefix+%q+suffix) = %d, want %d", e, got, want)
		}
	}
}

func TestString_AdversarialInput(t *testing.T) {
	// Long runs of bare ESC and unterminated parameter strings must
	// terminate in a single linear pass.
	inputs := []string{
		strings.Repeat("\x1b", 10000),
		"\x1b[" + strings.Repeat(";", 10000),
		"\x1b]" + strings.Repeat("x", 10000),
		strings.Repeat("\x1b[31m", 5000),
	}
	for _, in := range inputs {
		if got := String(in); got != 0 {
			t.Errorf("String(adversarial len %d) = %d, want 0", len(in), got)
		}
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"color wrapped", "\x1b[31mRed\x1b[0m", "Red"},
		{"hyperlink", "\x1b]8;;https://example.com\x07text\x1b]8;;\x07", "text"},
		{"lone esc dropped", "a\x1bb", "ab"},
		{"unterminated csi", "ok\x1b[12", "ok"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripANSI(tc.input); got != tc.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestString_NeverNegative(t *testing.T) {
	inputs := []string{"", "\x1b", "\x1b[", "\x1b]", "\x00\x01\x02", "\u200B\u200D", "abc"}
	for _, in := range inputs {
		if got := String(in); got < 0 {
			t.Errorf("String(%q) = %d, want >= 0", in, got)
		}
	}
}
