package utils

import (
	"strings"
	"unicode/utf8"
)

// CanonicalPlate trims surrounding whitespace and upper-cases a license plate.
// Non-Latin characters (e.g. province prefixes) are left as they are.
func CanonicalPlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// RuneLen returns the number of characters in s
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// TrimTrailingSlash removes every trailing "/" from a URL
func TrimTrailingSlash(u string) string {
	return strings.TrimRight(u, "/")
}
