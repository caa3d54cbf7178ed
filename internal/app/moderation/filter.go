/*
Package moderation classifies chat text against category word lists.

This file implements the filter itself. Matching is substring containment on
the normalized text, not whole-word matching: a list word appearing anywhere
inside the message triggers a block. That is deliberately broad — it accepts
false positives on words containing a banned substring in exchange for
resisting padding and insertion bypasses.
*/
package moderation

import "strings"

// Reason codes returned to the sender when a message is blocked. These are
// part of the client protocol and displayed verbatim.
const (
	ReasonProfanity = "Thats mean."
	ReasonSexual    = "Perv."
	ReasonHate      = "E"
)

// Decision is the outcome of classifying one message.
type Decision struct {
	// Allowed is true when the message may be broadcast.
	Allowed bool

	// Reason carries the category reason code when Allowed is false.
	Reason string
}

// category pairs a reason code with its letters-only word list.
type category struct {
	reason string
	words  []string
}

// categories are checked in order; the first category with a hit determines
// the single reason code returned.
var categories = []category{
	{reason: ReasonProfanity, words: reduceList(profanityWords)},
	{reason: ReasonSexual, words: reduceList(sexualWords)},
	{reason: ReasonHate, words: reduceList(slurWords)},
}

func reduceList(words []string) []string {
	reduced := make([]string, 0, len(words))
	for _, w := range words {
		if r := lettersOnly(w); r != "" {
			reduced = append(reduced, r)
		}
	}
	return reduced
}

// Classify normalizes text and tests it against every category in order.
// Empty text is always allowed. Each word is tested against the normalized
// text and against its repeated-letter-collapsed form, so stretched spellings
// like "fuuuck" still hit. Only text is ever inspected; image payloads bypass
// the filter entirely.
func Classify(text string) Decision {
	if text == "" {
		return Decision{Allowed: true}
	}

	cleaned := Normalize(text)
	collapsed := collapseRuns(cleaned)

	for _, cat := range categories {
		for _, w := range cat.words {
			if strings.Contains(cleaned, w) || strings.Contains(collapsed, w) {
				return Decision{Allowed: false, Reason: cat.reason}
			}
		}
	}

	return Decision{Allowed: true}
}
