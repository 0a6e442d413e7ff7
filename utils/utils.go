package utils

import (
	"strconv"
	"strings"
)

// StringPtr returns a pointer to the given string.
// This is a helper function for discordgo fields that require a *string.
func StringPtr(s string) *string {
	return &s
}

// ParseHexColor converts a "#rrggbb" string to a Discord embed color value.
// Invalid input falls back to the given default.
func ParseHexColor(s string, fallback int) int {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return fallback
	}
	return int(v)
}
