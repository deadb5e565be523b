package photo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	return abs
}

func TestDiscoverRecursive(t *testing.T) {
	root := t.TempDir()

	want := []string{
		writeFile(t, filepath.Join(root, "a.jpg")),
		writeFile(t, filepath.Join(root, "b.GIF")),
		writeFile(t, filepath.Join(root, "sub", "c.JPEG")),
		writeFile(t, filepath.Join(root, "sub", "deep", "d.png")),
		writeFile(t, filepath.Join(root, "sub", "e.bmp")),
	}
	// Non-image files are ignored.
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "sub", "video.mp4"))
	writeFile(t, filepath.Join(root, "noext"))

	got := Discover([]string{root})
	assert.ElementsMatch(t, want, got)
}

func TestDiscoverMultipleAlbums(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()

	want := []string{
		writeFile(t, filepath.Join(a, "one.jpg")),
		writeFile(t, filepath.Join(b, "two.jpg")),
	}

	got := Discover([]string{a, b})
	assert.ElementsMatch(t, want, got)
}

func TestDiscoverEmptyFolder(t *testing.T) {
	assert.Empty(t, Discover([]string{t.TempDir()}))
}

func TestDiscoverMissingFolder(t *testing.T) {
	// A nonexistent folder yields an empty sequence, not an error.
	missing := filepath.Join(t.TempDir(), "no-such-dir")
	assert.Empty(t, Discover([]string{missing}))
}

func TestDiscoverNoAlbums(t *testing.T) {
	assert.Empty(t, Discover(nil))
}
