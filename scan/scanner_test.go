package scan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "index.html", "<div></div>")
	writeFile(t, dir, "page10.html", "<div></div>")
	writeFile(t, dir, "page2.html", "<div></div>")
	writeFile(t, dir, "app.jsx", "export default null")
	writeFile(t, dir, "style.css", "body {}")
	writeFile(t, dir, ".hidden/secret.html", "<div></div>")
	writeFile(t, dir, "node_modules/pkg/index.html", "<div></div>")
	writeFile(t, dir, "sub/partial.html", "<div></div>")

	s := NewScanner([]string{".html", ".jsx"}, nil)
	files, err := s.Files([]string{dir})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		rel, err := filepath.Rel(dir, f.Path)
		require.NoError(t, err)
		names = append(names, filepath.ToSlash(rel))
	}

	// natural order, css and skipped directories excluded
	assert.Equal(t, []string{"app.jsx", "index.html", "page2.html", "page10.html", "sub/partial.html"}, names)
	for _, f := range files {
		assert.Positive(t, f.Size)
		assert.False(t, f.ModTime.IsZero())
	}
}

func TestFilesOverlappingRoots(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sub/page.html", "<div></div>")

	s := NewScanner([]string{".html"}, nil)
	files, err := s.Files([]string{dir, filepath.Join(dir, "sub")})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFilesMissingRoot(t *testing.T) {
	s := NewScanner([]string{".html"}, nil)
	_, err := s.Files([]string{filepath.Join(t.TempDir(), "absent")})
	assert.Error(t, err)
}

func TestCollect(t *testing.T) {
	files := []File{{Path: "a"}, {Path: "b"}, {Path: "c"}}

	perFile := map[string][]string{
		"a": {"flex", "p-4"},
		"b": {"p-4", "hover:underline"},
		"c": {"flex", "md:grid"},
	}

	s := NewScanner(nil, nil)
	classes, err := s.Collect(context.Background(), files, func(f File) ([]string, error) {
		return perFile[f.Path], nil
	})
	require.NoError(t, err)

	// unique, ordered by first appearance in file order
	assert.Equal(t, []string{"flex", "p-4", "hover:underline", "md:grid"}, classes)
}

func TestCollectEmpty(t *testing.T) {
	s := NewScanner(nil, nil)
	classes, err := s.Collect(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestCollectErrors(t *testing.T) {
	files := []File{{Path: "good"}, {Path: "bad"}}
	boom := errors.New("boom")

	s := NewScanner(nil, nil)
	_, err := s.Collect(context.Background(), files, func(f File) ([]string, error) {
		if f.Path == "bad" {
			return nil, boom
		}
		return []string{"flex"}, nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
}

func TestCollectCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := make([]File, 100)
	s := NewScanner(nil, nil)
	_, err := s.Collect(ctx, files, func(File) ([]string, error) {
		return []string{"flex"}, nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "index.html", `<div class="flex p-4"></div>`)

	s := NewScanner([]string{".html"}, nil)
	classes, err := s.ExtractFile(File{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"flex", "p-4"}, classes)

	_, err = s.ExtractFile(File{Path: filepath.Join(dir, "absent.html")})
	assert.Error(t, err)
}
