package driving

import "github.com/custodia-labs/primer/internal/core/domain"

// TextService provides string utilities.
type TextService interface {
	// Reverse returns s reversed by code point.
	Reverse(s string) string

	// IsPalindrome reports whether s reads the same backwards once
	// non-alphanumeric characters are removed and case is folded.
	IsPalindrome(s string) bool

	// WordCount returns the number of whitespace-separated words in s.
	WordCount(s string) int

	// Analyse returns all text statistics for s.
	Analyse(s string) domain.TextStats
}
