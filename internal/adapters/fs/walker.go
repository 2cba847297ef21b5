// Package fs provides file system adapters for discovering and reading script sources.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"
)

// scriptExtensions lists the file extensions treated as scripts when a
// directory is expanded.
var scriptExtensions = []string{".js", ".mjs", ".cjs"}

// skippedDirs are never descended into.
var skippedDirs = []string{".git", ".jj", "node_modules"}

// Walker discovers script files below a directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkScripts yields every script file below root in lexical order.
func (w *Walker) WalkScripts(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && slices.Contains(skippedDirs, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !isScript(path) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func isScript(path string) bool {
	return slices.Contains(scriptExtensions, strings.ToLower(filepath.Ext(path)))
}
