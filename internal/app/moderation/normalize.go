/*
Package moderation classifies chat text against category word lists.

This file implements the canonicalization pipeline that makes the matching
resistant to common obfuscations. The canonical form is used only for
comparison, never for display.
*/
package moderation

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// leetTable maps digits and symbols commonly used in place of letters back to
// the letter they imitate. Applied exactly once, never recursively.
var leetTable = map[rune]rune{
	'4': 'a',
	'@': 'a',
	'8': 'b',
	'3': 'e',
	'6': 'g',
	'1': 'i',
	'!': 'i',
	'0': 'o',
	'5': 's',
	'$': 's',
	'7': 't',
}

// Normalize reduces text to its canonical comparison form:
//  1. lowercase
//  2. canonical decomposition with combining marks stripped, collapsing
//     accent and homoglyph tricks
//  3. the fixed leetspeak substitution table, applied once
//  4. removal of every character outside [a-z]
//
// The result is a maximal run of lowercase ASCII letters. Normalize is
// idempotent: applying it twice yields the same string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)

	// The chained transformer carries internal buffers, so build it per call
	// rather than sharing one across goroutines.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	if decomposed, _, err := transform.String(stripMarks, s); err == nil {
		s = decomposed
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if sub, ok := leetTable[r]; ok {
			r = sub
		}
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// lettersOnly strips everything outside [a-z]. Used to reduce word-list
// entries, which are written in plain lowercase, to their comparison form.
func lettersOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseRuns squeezes adjacent repeated letters into one, so stretched
// spellings collapse to the plain word. Input must already be letters-only.
func collapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for _, r := range s {
		if r != prev {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
