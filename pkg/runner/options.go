// Package runner validates a corpus of topic documents.
package runner

import "github.com/yaklabco/docstyle/pkg/config"

// Options controls corpus validation.
type Options struct {
	// Paths are the user-specified files or directories to validate.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and to
	// build document IDs. If empty, the process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// treated as topic documents. Defaults to DefaultExtensions().
	Extensions []string

	// IgnoreGlobs are doublestar patterns, relative to WorkingDir, for files
	// and directories to skip. They merge config ignore entries and --ignore.
	IgnoreGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of documents validated at once.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
