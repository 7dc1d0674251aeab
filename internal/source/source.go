// Package source supplies the document to check. It replaces an interactive
// file chooser with a path argument or standard input.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"spellchecker/internal/scan"
)

// ErrNoInput means no document was selected.
var ErrNoInput = errors.New("no file selected")

// Provider opens the document to check and returns a name for messages.
type Provider interface {
	Open(ctx context.Context) (io.ReadCloser, string, error)
}

type fileProvider struct {
	path string
}

// File opens path on demand.
func File(path string) Provider {
	return fileProvider{path: path}
}

func (p fileProvider) Open(ctx context.Context) (io.ReadCloser, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, p.path, err
	}
	if p.path == "" {
		return nil, "", ErrNoInput
	}
	f, err := os.Open(p.path)
	if err != nil {
		return nil, p.path, &scan.InputError{Name: p.path, Err: err}
	}
	return f, p.path, nil
}

type readerProvider struct {
	r    io.Reader
	name string
}

// Reader serves an already open stream; Close on the result is a no-op.
func Reader(r io.Reader, name string) Provider {
	return readerProvider{r: r, name: name}
}

func (p readerProvider) Open(ctx context.Context) (io.ReadCloser, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, p.name, err
	}
	if p.r == nil {
		return nil, p.name, ErrNoInput
	}
	return io.NopCloser(p.r), p.name, nil
}

// FromArgs picks the document from command-line arguments: a single path,
// or "-" / nothing for stdin.
func FromArgs(args []string, stdin io.Reader) (Provider, error) {
	switch {
	case len(args) == 0, len(args) == 1 && args[0] == "-":
		return Reader(stdin, "<stdin>"), nil
	case len(args) == 1:
		return File(args[0]), nil
	default:
		return nil, fmt.Errorf("expected one input file, got %d", len(args))
	}
}
