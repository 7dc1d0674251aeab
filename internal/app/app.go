// Package app wires configuration, the word list and custom words together
// for the command-line and HTTP binaries.
package app

import (
	"context"
	"log"

	"spellchecker/internal/dictionary"
)

// probeWords are reported after loading as a quick sanity check of the list.
var probeWords = []string{"the", "be", "of", "and"}

// WordStore lists extra accepted words, e.g. *customdict.CustomDict.
type WordStore interface {
	All(ctx context.Context) ([]string, error)
}

// LoadDictionary loads path and merges the words from custom, if any.
// A failing custom store is logged and skipped; a failing word list is not.
func LoadDictionary(ctx context.Context, path string, custom WordStore, logger *log.Logger) (*dictionary.Dictionary, error) {
	dict, err := dictionary.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if custom != nil {
		words, err := custom.All(ctx)
		if err != nil {
			logger.Printf("warning: unable to load custom words: %v", err)
		} else if len(words) > 0 {
			dict = dict.Merge(words...)
			logger.Printf("merged %d custom words", len(words))
		}
	}

	logger.Printf("Dictionary loaded. Word count: %d", dict.Len())
	for _, w := range probeWords {
		if dict.Contains(w) {
			logger.Printf("The word '%s' is in the dictionary.", w)
		} else {
			logger.Printf("The word '%s' is NOT in the dictionary.", w)
		}
	}
	return dict, nil
}
