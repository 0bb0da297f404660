package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/runner"
)

// writeTree creates files (relative to dir) with the given content.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// relPaths converts discovered absolute paths back to slash paths under dir.
func relPaths(t *testing.T, dir string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"arrays.md": "# Arrays\n"})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{filepath.Join(dir, "arrays.md")},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "arrays.md")}, files)
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"strings.md":            "x",
		"topics/arrays.md":      "x",
		"topics/maps.markdown":  "x",
		"topics/Example.java":   "x",
		"notes.txt":             "x",
		"topics/UPPER.MD":       "x",
		"topics/nested/deep.md": "x",
	})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"strings.md",
		"topics/UPPER.MD",
		"topics/arrays.md",
		"topics/maps.markdown",
		"topics/nested/deep.md",
	}, relPaths(t, dir, files))
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.md": "x", "b.mdx": "x"})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".mdx"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.mdx"}, relPaths(t, dir, files))
}

func TestDiscover_IgnoreGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"strings.md":             "x",
		"drafts/wip.md":          "x",
		"topics/arrays.md":       "x",
		"topics/arrays.draft.md": "x",
		"topics/legacy/old.md":   "x",
	})

	tests := []struct {
		name   string
		ignore []string
		want   []string
	}{
		{
			name:   "no patterns",
			ignore: nil,
			want: []string{
				"drafts/wip.md", "strings.md", "topics/arrays.draft.md",
				"topics/arrays.md", "topics/legacy/old.md",
			},
		},
		{
			name:   "directory glob",
			ignore: []string{"drafts/**"},
			want: []string{
				"strings.md", "topics/arrays.draft.md", "topics/arrays.md", "topics/legacy/old.md",
			},
		},
		{
			name:   "base name glob at any depth",
			ignore: []string{"*.draft.md"},
			want: []string{
				"drafts/wip.md", "strings.md", "topics/arrays.md", "topics/legacy/old.md",
			},
		},
		{
			name:   "double star in the middle",
			ignore: []string{"topics/**/old.md"},
			want: []string{
				"drafts/wip.md", "strings.md", "topics/arrays.draft.md", "topics/arrays.md",
			},
		},
		{
			name:   "brace alternatives",
			ignore: []string{"{drafts,topics}/**"},
			want:   []string{"strings.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			files, err := runner.Discover(context.Background(), runner.Options{
				WorkingDir:  dir,
				IgnoreGlobs: tt.ignore,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, relPaths(t, dir, files))
		})
	}
}

func TestDiscover_HiddenFilesAndDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"strings.md":       "x",
		".hidden.md":       "x",
		".git/notes.md":    "x",
		"topics/.draft.md": "x",
	})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"strings.md"}, relPaths(t, dir, files))
}

func TestDiscover_DeduplicatesAndSorts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"b.md": "x", "a.md": "x", "sub/c.md": "x"})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"sub", "b.md", ".", "a.md"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.md", "sub/c.md"}, relPaths(t, dir, files))
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.md": "x"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"real/doc.md": "x"})

	external := t.TempDir()
	writeTree(t, external, map[string]string{"external.md": "x"})

	if err := os.Symlink(external, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"real/doc.md"}, relPaths(t, dir, files))

	files, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.ElementsMatch(t, []string{"doc.md", "external.md"},
		[]string{filepath.Base(files[0]), filepath.Base(files[1])})
}

func TestDocumentID(t *testing.T) {
	t.Parallel()

	root := filepath.Join(string(filepath.Separator), "corpus")

	assert.Equal(t, "topics/arrays.md", runner.DocumentID(root, filepath.Join(root, "topics", "arrays.md")))
	assert.Equal(t, "strings.md", runner.DocumentID(root, filepath.Join(root, "strings.md")))

	outside := filepath.Join(string(filepath.Separator), "elsewhere", "x.md")
	assert.Equal(t, filepath.ToSlash(outside), runner.DocumentID(root, outside))
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t, []string{".md", ".markdown"}, runner.DefaultExtensions())
}

func TestIgnored(t *testing.T) {
	t.Parallel()

	work := filepath.FromSlash("/corpus")
	patterns := []string{"drafts/**", "*.tmp.md", "basics/**/legacy"}

	tests := []struct {
		path string
		want bool
	}{
		{"/corpus/drafts", true},
		{"/corpus/drafts/new.md", true},
		{"/corpus/notes/x.tmp.md", true},
		{"/corpus/basics/arrays/legacy", true},
		{"/corpus/basics/arrays", false},
		{"/corpus/intro.md", false},
		{"/elsewhere/drafts", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, runner.Ignored(work, patterns, filepath.FromSlash(tt.path)), tt.path)
	}
}
