package tools

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizePhone normalizes a phone number to E.164 (leading '+', digits
// only), the format the verification provider expects.
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty phone")
	}

	var b strings.Builder
	b.Grow(len(raw) + 1)
	b.WriteByte('+')
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	phone := b.String()

	// country code + subscriber number
	if len(phone) < 9 || len(phone) > 16 {
		return "", fmt.Errorf("invalid phone length: %d", len(phone)-1)
	}
	return phone, nil
}
