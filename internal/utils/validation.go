package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"foodgram-backend/domain"
)

// ValidateHexColor accepts "RGB", "RRGGBB" and the same with a leading '#',
// and returns the '#'-prefixed value.
func ValidateHexColor(value string) (string, error) {
	color := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(color) != 3 && len(color) != 6 {
		return "", domain.ErrInvalidColor
	}
	for _, r := range color {
		if !isHexDigit(r) {
			return "", domain.ErrInvalidColor
		}
	}
	return "#" + color, nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// ValidateUsername requires 3..150 letters and returns the capitalized form:
// first letter upper case, the rest lower case.
func ValidateUsername(value string) (string, error) {
	n := utf8.RuneCountInString(value)
	if n < domain.MinUsernameLength || n > domain.MaxUserFieldLength {
		return "", domain.ErrInvalidUsername
	}
	for _, r := range value {
		if !unicode.IsLetter(r) {
			return "", domain.ErrInvalidUsername
		}
	}
	first, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(first)) + strings.ToLower(value[size:]), nil
}

// FindDuplicateByKey reports whether any record's key equals value.
// Records are scanned in order; callers use it on short ingredient lists.
func FindDuplicateByKey[T any, K comparable](records []T, key func(T) K, value K) bool {
	for _, record := range records {
		if key(record) == value {
			return true
		}
	}
	return false
}
