package format

import (
	"strconv"
	"strings"
)

// FormatNumberString inserts comma separators every three digits into a
// decimal number string. A leading minus sign is preserved. Strings of three
// digits or fewer are returned unchanged.
//
// Parameters:
//   - s: The decimal number string to format.
//
// Returns:
//   - string: The input with thousands separators inserted.
func FormatNumberString(s string) string {
	digits := strings.TrimPrefix(s, "-")
	if len(digits) <= 3 {
		return s
	}

	groups := make([]string, 0, len(digits)/3+1)
	head := len(digits) % 3
	if head > 0 {
		groups = append(groups, digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		groups = append(groups, digits[i:i+3])
	}

	out := strings.Join(groups, ",")
	if len(digits) != len(s) {
		out = "-" + out
	}
	return out
}

// FormatCount renders an operation count with thousands separators.
func FormatCount(n uint64) string {
	return FormatNumberString(strconv.FormatUint(n, 10))
}
