package app

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellchecker/internal/customdict"
	"spellchecker/internal/dictionary"
)

type fakeStore struct {
	words []string
	err   error
}

func (f fakeStore) All(context.Context) ([]string, error) { return f.words, f.err }

func writeWords(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDictionaryLogsProbes(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	dict, err := LoadDictionary(context.Background(), writeWords(t, "The of cat"), nil, logger)
	require.NoError(t, err)
	assert.Equal(t, 3, dict.Len())

	out := buf.String()
	assert.Contains(t, out, "Dictionary loaded. Word count: 3")
	assert.Contains(t, out, "The word 'the' is in the dictionary.")
	assert.Contains(t, out, "The word 'be' is NOT in the dictionary.")
	assert.Contains(t, out, "The word 'of' is in the dictionary.")
	assert.Contains(t, out, "The word 'and' is NOT in the dictionary.")
}

func TestLoadDictionaryMergesCustomWords(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, "", 0)
	dict, err := LoadDictionary(context.Background(), writeWords(t, "cat"),
		fakeStore{words: []string{"Kubernetes"}}, logger)
	require.NoError(t, err)
	assert.True(t, dict.Contains("kubernetes"))
	assert.True(t, dict.Contains("cat"))
}

func TestLoadDictionaryIgnoresStoreFailure(t *testing.T) {
	var buf bytes.Buffer
	dict, err := LoadDictionary(context.Background(), writeWords(t, "cat"),
		fakeStore{err: errors.New("connection refused")}, log.New(&buf, "", 0))
	require.NoError(t, err)
	assert.Equal(t, 1, dict.Len())
	assert.Contains(t, buf.String(), "connection refused")
}

func TestLoadDictionaryMissingFile(t *testing.T) {
	_, err := LoadDictionary(context.Background(), filepath.Join(t.TempDir(), "nope"), nil, log.New(&bytes.Buffer{}, "", 0))
	assert.ErrorIs(t, err, dictionary.ErrLoad)
}

func TestLoadDictionaryWithRedisCustomWords(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cd := customdict.New(client)
	require.NoError(t, cd.Add(ctx, "Golang"))
	require.NoError(t, cd.Add(ctx, "redis"))

	var buf bytes.Buffer
	dict, err := LoadDictionary(ctx, writeWords(t, "cat"), cd, log.New(&buf, "", 0))
	require.NoError(t, err)
	assert.Equal(t, 3, dict.Len())
	assert.True(t, dict.Contains("golang"))
	assert.Contains(t, buf.String(), "merged 2 custom words")
}
