package corrector

import "strings"

// Lookup is the membership query the corrector needs from a dictionary.
type Lookup interface {
	Contains(word string) bool
}

// CorrectionSet holds unique candidates in ascending byte order.
// A candidate is a single word or two words joined by one space.
type CorrectionSet []string

func (cs CorrectionSet) String() string {
	return strings.Join(cs, ", ")
}

// SuggestionInfo is the wire form of one looked-up token. Suggestions is
// empty for known tokens.
type SuggestionInfo struct {
	Token       string        `json:"token"`
	Known       bool          `json:"known"`
	Suggestions CorrectionSet `json:"suggestions"`
}
