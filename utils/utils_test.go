package utils

import "testing"

func TestParseHexColor(t *testing.T) {
	const fallback = 0x5865F2
	cases := []struct {
		in   string
		want int
	}{
		{"#7c3aed", 0x7c3aed},
		{"7c3aed", 0x7c3aed},
		{"#FFFFFF", 0xFFFFFF},
		{"#000000", 0x000000},
		{"", fallback},
		{"#fff", fallback},
		{"#zzzzzz", fallback},
		{"#7c3aed00", fallback},
	}
	for _, c := range cases {
		if got := ParseHexColor(c.in, fallback); got != c.want {
			t.Errorf("ParseHexColor(%q) = %#x, want %#x", c.in, got, c.want)
		}
	}
}
