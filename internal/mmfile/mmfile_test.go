package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	t.Run("Contents", func(t *testing.T) {
		path := filepath.Join(dir, "words.txt")
		want := []byte("the quick brown fox\n")
		require.NoError(t, os.WriteFile(path, want, 0o644))

		f, err := Open(path)
		require.NoError(t, err)

		assert.Equal(t, want, f.Bytes())
		assert.Equal(t, len(want), f.Len())
		require.NoError(t, f.Close())
	})

	t.Run("Empty", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		f, err := Open(path)
		require.NoError(t, err)

		assert.Nil(t, f.Bytes())
		assert.Equal(t, 0, f.Len())
		require.NoError(t, f.Close())
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "missing.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
