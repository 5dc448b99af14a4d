package contract

import "strings"

// IsEmpty returns true if text is empty or only contains whitespace.
func IsEmpty(text string) bool {
	return !IsNonEmpty(text)
}

// IsNonEmpty returns true if text has at least one non-whitespace character.
func IsNonEmpty(text string) bool {
	return len(strings.TrimSpace(text)) > 0
}

// Quoted wraps text in double quotes without escaping anything.
func Quoted(text string) string {
	return `"` + text + `"`
}
