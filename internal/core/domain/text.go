package domain

// TextStats holds everything the text utilities report about a string.
type TextStats struct {
	// Original is the analysed input.
	Original string

	// Reversed is Original reversed by code point.
	Reversed string

	// Upper is Original upper-cased.
	Upper string

	// Length is the number of code points in Original.
	Length int

	// Palindrome reports whether the normalised input reads the same backwards.
	Palindrome bool

	// Words is the number of whitespace-separated words.
	Words int
}
