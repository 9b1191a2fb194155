package phone

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedNumber error = errors.New("malformed phone number")

const (
	minDigits = 8
	maxDigits = 15
)

// Normalize converts a raw phone-number token into E.164 form ("+" followed
// by 8 to 15 digits). Accepted inputs are "+2348010000000", the international
// "00" prefix, and national numbers starting with "0" when defaultCountryCode
// (digits only, e.g. "234") is provided. Separator characters are stripped
// before validation.
func Normalize(raw string, defaultCountryCode string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return "", fmt.Errorf("%w: empty input", ErrMalformedNumber)
	}

	var digits string
	switch {
	case strings.HasPrefix(cleaned, "+"):
		digits = cleaned[1:]
	case strings.HasPrefix(cleaned, "00"):
		digits = cleaned[2:]
	case strings.HasPrefix(cleaned, "0") && defaultCountryCode != "":
		digits = defaultCountryCode + cleaned[1:]
	default:
		return "", fmt.Errorf("%w: %q is not in international format", ErrMalformedNumber, raw)
	}

	if !isDigits(digits) {
		return "", fmt.Errorf("%w: %q contains non-digit characters", ErrMalformedNumber, raw)
	}
	if len(digits) < minDigits || len(digits) > maxDigits {
		return "", fmt.Errorf("%w: %q has %d digits, want %d-%d", ErrMalformedNumber, raw, len(digits), minDigits, maxDigits)
	}

	return "+" + digits, nil
}

// Looks checks whether a token is plausibly a phone number, without
// validating it. Used by the intent parser to pick the recipient token out
// of free text.
func Looks(token string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, token)

	if strings.HasPrefix(cleaned, "+") || strings.HasPrefix(cleaned, "0") {
		rest := strings.TrimLeft(cleaned, "+")
		return len(rest) >= minDigits-1 && isDigits(rest)
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
