package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellchecker/internal/dictionary"
	"spellchecker/internal/scan"
	"spellchecker/internal/source"
)

func TestCheckPrintsReports(t *testing.T) {
	checker := &scan.Checker{Dict: dictionary.New("the", "cat", "a")}
	var out bytes.Buffer

	err := check(context.Background(), checker,
		source.Reader(strings.NewReader("Teh cat, teh acat! 42 qqq"), "doc"), &out)
	require.NoError(t, err)
	assert.Equal(t, "teh: the\nacat: a cat, cat\nqqq: (no suggestions)\n", out.String())
}

func TestCheckMissingInput(t *testing.T) {
	checker := &scan.Checker{Dict: dictionary.New("cat")}
	err := check(context.Background(), checker,
		source.File(filepath.Join(t.TempDir(), "missing.txt")), &bytes.Buffer{})
	assert.ErrorIs(t, err, scan.ErrInput)
}

func TestRootCommand(t *testing.T) {
	for _, k := range []string{"DICTIONARY_PATH", "REDIS_ADDR"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	words := filepath.Join(dir, "words.txt")
	doc := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(words, []byte("the\ncat\nsat\n"), 0o644))
	require.NoError(t, os.WriteFile(doc, []byte("The cta sat."), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--dict", words, "--env-file", filepath.Join(dir, "none.env"), doc})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		dictPath, envFile = "", ".env"
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Equal(t, "cta: cat\n", out.String())
}

func TestRootCommandMissingDictionary(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"--dict", filepath.Join(dir, "nope.txt"), "--env-file", filepath.Join(dir, "none.env"), "-"})
	rootCmd.SetIn(strings.NewReader("anything"))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		dictPath, envFile = "", ".env"
	})

	err := rootCmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, dictionary.ErrLoad)
}
