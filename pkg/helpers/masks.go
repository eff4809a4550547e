package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMask parses a flag mask from its textual form. Hex (0x), octal (0o),
// binary (0b) and plain decimal are accepted; the value must fit in 32 bits.
func ParseMask(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty mask")
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid mask %q: %w", s, err)
	}
	return uint32(v), nil
}

// FormatMask renders a mask in the 0x%08X form used throughout the CLIs.
func FormatMask(m uint32) string {
	return fmt.Sprintf("0x%08X", m)
}
