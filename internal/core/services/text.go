package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/primer/internal/core/domain"
	"github.com/custodia-labs/primer/internal/core/ports/driving"
)

// Ensure TextService implements the interface.
var _ driving.TextService = (*TextService)(nil)

// TextService implements string utilities over Unicode code points.
type TextService struct{}

// NewTextService creates a new text service.
func NewTextService() *TextService {
	return &TextService{}
}

// Reverse returns str with its code points in reverse order.
// Invalid UTF-8 bytes are replaced with U+FFFD.
func (s *TextService) Reverse(str string) string {
	runes := []rune(str)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsPalindrome reports whether the alphabetic and numeric characters of str,
// lower-cased, read the same in both directions. A string with none is a
// palindrome.
func (s *TextService) IsPalindrome(str string) bool {
	cleaned := normalise(str)
	return cleaned == s.Reverse(cleaned)
}

// WordCount returns the number of non-empty whitespace-separated fields.
func (s *TextService) WordCount(str string) int {
	return len(strings.Fields(str))
}

// Analyse returns all statistics for str.
func (s *TextService) Analyse(str string) domain.TextStats {
	return domain.TextStats{
		Original:   str,
		Reversed:   s.Reverse(str),
		Upper:      cases.Upper(language.Und).String(str),
		Length:     utf8.RuneCountInString(str),
		Palindrome: s.IsPalindrome(str),
		Words:      s.WordCount(str),
	}
}

// normalise keeps alphabetic and numeric code points, including combining
// marks with the Other_Alphabetic property, and lower-cases each one on its
// own with full Unicode mapping. Casing rune by rune keeps context rules such
// as Greek final sigma from applying.
func normalise(str string) string {
	lower := cases.Lower(language.Und)
	var b strings.Builder
	b.Grow(len(str))
	for _, r := range str {
		if unicode.In(r, unicode.L, unicode.N, unicode.Other_Alphabetic) {
			b.WriteString(lower.String(string(r)))
		}
	}
	return b.String()
}
