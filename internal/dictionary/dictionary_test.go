package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLowercasesWords(t *testing.T) {
	d, err := Load(strings.NewReader("The  Cat\n\tsat on\r\nTHE mat"))
	require.NoError(t, err)

	assert.Equal(t, 5, d.Len())
	for _, w := range []string{"the", "cat", "sat", "on", "mat"} {
		assert.True(t, d.Contains(w), w)
	}
	assert.False(t, d.Contains("The"))
	assert.False(t, d.Contains("ca"))
}

func TestLoadReadFailure(t *testing.T) {
	_, err := Load(iotest.ErrReader(errors.New("boom")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Apple\nbanana\ncherry\n"), 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("apple"))
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Path)
	assert.Contains(t, err.Error(), path)
}

func TestLoadFileDirectory(t *testing.T) {
	_, err := LoadFile(t.TempDir())
	assert.ErrorIs(t, err, ErrLoad)
}

func TestMergeLeavesReceiverUntouched(t *testing.T) {
	base := New("cat")
	merged := base.Merge("Dog", "", "  ")

	assert.Equal(t, 1, base.Len())
	assert.False(t, base.Contains("dog"))
	assert.Equal(t, 2, merged.Len())
	assert.True(t, merged.Contains("dog"))
	assert.True(t, merged.Contains("cat"))
}
