package colorpicker

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryInvalidPath(t *testing.T) {
	dir := t.TempDir()
	_, err := NewHistory(dir, 10)
	assert.Error(t, err)

	_, err = NewHistory(filepath.Join(dir, "missing", "history"), 10)
	assert.Error(t, err)
}

func TestHistory(t *testing.T) {
	maxHistory := 50
	path := filepath.Join(t.TempDir(), "history")

	{ // Append lines
		h, err := NewHistory(path, maxHistory)
		require.NoError(t, err)
		for i := 0; i < maxHistory+10; i++ {
			require.NoError(t, h.append(fmt.Sprintf("#0000%02X", i)))
		}
	}
	{ // Read lines
		h, err := NewHistory(path, maxHistory)
		require.NoError(t, err)
		entries := h.Entries()
		require.Len(t, entries, maxHistory)
		assert.Equal(t, "#00000A", entries[0])
		assert.Equal(t, "#00003B", entries[maxHistory-1])

		require.NoError(t, h.append(""))
		require.NoError(t, h.append("#FFFFFF"))
		assert.Len(t, h.Entries(), maxHistory)
	}
	{ // Read lines again
		h, err := NewHistory(path, maxHistory)
		require.NoError(t, err)
		entries := h.Entries()
		assert.Equal(t, "#00003B", entries[maxHistory-2])
		assert.Equal(t, "#FFFFFF", entries[maxHistory-1])
	}
}

func TestHistoryInvalidLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("#ff0000\nnot a color\n\n  00ff00  \n#12345\n"), 0600))

	h, err := NewHistory(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"#FF0000", "#00FF00"}, h.Entries())
}

func TestHistoryNavigation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	h, err := NewHistory(path, 10)
	require.NoError(t, err)
	require.NoError(t, h.append("#FF0000"))
	require.NoError(t, h.append("#00FF00"))

	h.override("#123456")
	assert.Equal(t, "#00FF00", h.previous())
	assert.Equal(t, "#FF0000", h.previous())
	assert.Equal(t, "#FF0000", h.previous())

	// Overrides of old entries are kept in memory only
	h.override("#ABCDEF")
	assert.Equal(t, "#00FF00", h.next())
	assert.Equal(t, "#123456", h.next())
	assert.Equal(t, "#123456", h.next())
	assert.Equal(t, "#00FF00", h.previous())
	assert.Equal(t, "#ABCDEF", h.previous())

	reloaded, err := NewHistory(path, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"#FF0000", "#00FF00"}, reloaded.Entries())
}
