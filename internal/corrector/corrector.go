// Package corrector proposes corrections reachable from a misspelled word by
// one deletion, substitution, insertion, adjacent transposition or split.
package corrector

import (
	"sort"

	"spellchecker/pkg/options"
)

// Corrector holds no per-call state and may be shared between goroutines.
type Corrector struct {
	config   options.CorrectorOptions
	alphabet []rune
	letters  map[rune]struct{}
}

var defaultCorrector = New()

func New(opts ...options.Options) *Corrector {
	conf := options.Build(opts...)
	c := &Corrector{config: conf, alphabet: []rune(conf.Alphabet), letters: make(map[rune]struct{})}
	for _, r := range c.alphabet {
		c.letters[r] = struct{}{}
	}
	return c
}

// Suggest uses the default corrector.
func Suggest(badWord string, dict Lookup) CorrectionSet {
	return defaultCorrector.Suggest(badWord, dict)
}

// Suggest returns every dictionary word, and every pair of dictionary words,
// one edit away from badWord. badWord must be spelled with the corrector's
// alphabet (a..z unless options.WithAlphabet widens it); anything else,
// including "", yields an empty set. The result is never nil.
func (c *Corrector) Suggest(badWord string, dict Lookup) CorrectionSet {
	if !c.inAlphabet(badWord) {
		return CorrectionSet{}
	}

	found := make(map[string]struct{})
	try := func(s string) {
		if dict.Contains(s) {
			found[s] = struct{}{}
		}
	}

	r := []rune(badWord)
	n := len(r)
	buf := make([]rune, 0, n+1)

	if c.config.Deletes {
		for i := 0; i < n; i++ {
			buf = append(append(buf[:0], r[:i]...), r[i+1:]...)
			try(string(buf))
		}
	}

	// includes the no-op substitution; badWord itself is never in dict here
	if c.config.Substitutes {
		for i := 0; i < n; i++ {
			buf = append(buf[:0], r...)
			for _, ch := range c.alphabet {
				buf[i] = ch
				try(string(buf))
			}
		}
	}

	if c.config.Inserts {
		for i := 0; i <= n; i++ {
			for _, ch := range c.alphabet {
				buf = append(buf[:0], r[:i]...)
				buf = append(buf, ch)
				buf = append(buf, r[i:]...)
				try(string(buf))
			}
		}
	}

	if c.config.Transposes {
		for i := 0; i+1 < n; i++ {
			buf = append(buf[:0], r...)
			buf[i], buf[i+1] = buf[i+1], buf[i]
			try(string(buf))
		}
	}

	if c.config.Splits {
		for i := 1; i < n; i++ {
			prefix, suffix := string(r[:i]), string(r[i:])
			if dict.Contains(prefix) && dict.Contains(suffix) {
				found[prefix+" "+suffix] = struct{}{}
			}
		}
	}

	out := make(CorrectionSet, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
