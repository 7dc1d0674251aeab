// Package scan checks a document against a dictionary and reports each
// unknown token once, with its single-edit corrections.
package scan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"spellchecker/internal/corrector"
)

// ErrInput is matched by every *InputError.
var ErrInput = errors.New("scan: unable to read input")

// InputError reports a document that could not be read.
type InputError struct {
	Name string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("scan: unable to read %s: %v", e.Name, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

func (e *InputError) Is(target error) bool { return target == ErrInput }

// Report is one unknown token and its candidates.
type Report struct {
	Token       string                  `json:"token"`
	Suggestions corrector.CorrectionSet `json:"suggestions"`
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// ScanLetters is a bufio.SplitFunc returning maximal runs of ASCII letters.
func ScanLetters(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && !isLetter(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if !isLetter(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// Seen tracks tokens already reported in one run. It belongs to the caller
// and is not safe for concurrent use.
type Seen struct {
	tokens map[string]struct{}
}

func NewSeen() *Seen {
	return &Seen{tokens: make(map[string]struct{})}
}

func (s *Seen) Has(token string) bool {
	_, ok := s.tokens[token]
	return ok
}

// Add records token and reports whether it was new.
func (s *Seen) Add(token string) bool {
	if s.Has(token) {
		return false
	}
	s.tokens[token] = struct{}{}
	return true
}

func (s *Seen) Len() int { return len(s.tokens) }

// Checker pairs a dictionary with a corrector. The zero Corrector means
// corrector.Suggest defaults.
type Checker struct {
	Dict      corrector.Lookup
	Corrector *corrector.Corrector
}

// Suggest corrects a single lowercase token.
func (c *Checker) Suggest(token string) corrector.CorrectionSet {
	if c.Corrector == nil {
		return corrector.Suggest(token, c.Dict)
	}
	return c.Corrector.Suggest(token, c.Dict)
}

// Run streams tokens from r and calls emit for the first occurrence of each
// token missing from the dictionary. name labels r in errors.
func (c *Checker) Run(ctx context.Context, name string, r io.Reader, seen *Seen, emit func(Report) error) error {
	if seen == nil {
		seen = NewSeen()
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(ScanLetters)
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		token := strings.ToLower(s.Text())
		if seen.Has(token) || c.Dict.Contains(token) {
			continue
		}
		seen.Add(token)
		if err := emit(Report{Token: token, Suggestions: c.Suggest(token)}); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return &InputError{Name: name, Err: err}
	}
	return nil
}

// Check collects the reports Run would emit.
func (c *Checker) Check(ctx context.Context, name string, r io.Reader, seen *Seen) ([]Report, error) {
	reports := []Report{}
	err := c.Run(ctx, name, r, seen, func(rep Report) error {
		reports = append(reports, rep)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// WriteReport prints "token: a, b" or "token: (no suggestions)".
func WriteReport(w io.Writer, rep Report) error {
	list := rep.Suggestions.String()
	if len(rep.Suggestions) == 0 {
		list = "(no suggestions)"
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", rep.Token, list)
	return err
}
