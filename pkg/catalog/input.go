package catalog

import (
	"strconv"
	"strings"
)

// ParsePrice normalizes a user-entered price string. All non-digit characters
// are stripped before parsing, so "12.000", "¥1,200" and "1200 yen" all work.
// A string with no digits at all means the price is unknown.
func ParsePrice(raw string) *int {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return nil
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return nil
	}
	return &n
}

// SplitTags turns a comma-separated tag string into a clean slice: segments
// are trimmed and empty ones dropped. Order is preserved for display.
func SplitTags(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
