// Package dictionary holds the set of words considered correctly spelled.
package dictionary

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// ErrLoad is matched by every *LoadError.
var ErrLoad = errors.New("dictionary: unable to load")

// LoadError reports a word source that could not be opened or read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("dictionary: unable to load: %v", e.Err)
	}
	return fmt.Sprintf("dictionary: unable to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// Dictionary is a read-only set of lowercase words. It is safe for
// concurrent use once built.
type Dictionary struct {
	words map[string]struct{}
}

// New builds a dictionary from literal words.
func New(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.add(w)
	}
	return d
}

func (d *Dictionary) add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	d.words[word] = struct{}{}
}

// Load reads whitespace-separated words from r.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		d.add(s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, &LoadError{Err: err}
	}
	return d, nil
}

// LoadFile memory-maps path and loads the words it contains.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if fi.IsDir() {
		return nil, &LoadError{Path: path, Err: errors.New("is a directory")}
	}
	// zero-length files cannot be mapped
	if fi.Size() == 0 {
		return New(), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("mmap: %w", err)}
	}
	defer m.Unmap()

	d, err := Load(bytes.NewReader(m))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return d, nil
}

// Merge returns a new dictionary holding the words of d plus words.
// d itself is left unchanged.
func (d *Dictionary) Merge(words ...string) *Dictionary {
	out := &Dictionary{words: make(map[string]struct{}, len(d.words)+len(words))}
	for w := range d.words {
		out.words[w] = struct{}{}
	}
	for _, w := range words {
		out.add(w)
	}
	return out
}

// Contains reports whether word is present. The query is not lowercased.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

func (d *Dictionary) Len() int { return len(d.words) }
