package utils

import (
	"html"
	"strings"
)

// SanitizeString trims surrounding whitespace and escapes HTML entities in
// free-text input before it reaches the store.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// SanitizeSearchTerm trims a user-supplied search term. An all-whitespace
// term collapses to empty, which callers treat as "no filter".
func SanitizeSearchTerm(term string) string {
	return strings.TrimSpace(term)
}
