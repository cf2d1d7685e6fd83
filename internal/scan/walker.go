// Package scan implements the bounded repository sampler: a lazy directory
// traversal plus per-file sampling that together produce a size-capped
// textual snapshot of a directory tree.
package scan

import (
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoredNames lists entry basenames never descended into or sampled.
// Fixed for the lifetime of a scan.
var ignoredNames = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	"dist":         {},
	"build":        {},
	".next":        {},
	".turbo":       {},
	"coverage":     {},
	".venv":        {},
	"venv":         {},
	"out":          {},
}

// Walker enumerates file paths under a root, depth-first via an explicit
// stack of pending directories. It is lazy, finite, and non-restartable:
// once Next reports done, the walker stays exhausted.
//
// Yield order is deterministic for a stable underlying listing but depends
// on that listing order; callers must not rely on lexical ordering.
type Walker struct {
	root     string
	frontier []string // pending directories, LIFO
	pending  []string // files listed but not yet yielded, FIFO
	yielded  int
	maxFiles int
	matcher  *ignore.GitIgnore
}

// NewWalker returns a walker over root that yields at most maxFiles file
// paths. matcher may be nil; when set, entries whose root-relative path it
// matches are skipped in addition to the fixed ignore set.
func NewWalker(root string, maxFiles int, matcher *ignore.GitIgnore) *Walker {
	return &Walker{
		root:     root,
		frontier: []string{root},
		maxFiles: maxFiles,
		matcher:  matcher,
	}
}

// Next returns the next candidate file path. ok is false once the walker is
// exhausted or the file cap has been reached; after that it stays false.
func (w *Walker) Next() (path string, ok bool) {
	for {
		if w.yielded >= w.maxFiles {
			w.frontier = nil
			w.pending = nil
			return "", false
		}
		if len(w.pending) > 0 {
			path = w.pending[0]
			w.pending = w.pending[1:]
			w.yielded++
			return path, true
		}
		if len(w.frontier) == 0 {
			return "", false
		}
		dir := w.frontier[len(w.frontier)-1]
		w.frontier = w.frontier[:len(w.frontier)-1]
		w.expand(dir)
	}
}

// expand lists dir and distributes its entries: files onto the pending
// queue, subdirectories onto the frontier (popped in reverse listing
// order). An unlistable directory contributes nothing.
func (w *Walker) expand(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if _, skip := ignoredNames[name]; skip {
			continue
		}
		full := filepath.Join(dir, name)
		if w.matcher != nil {
			if rel, err := filepath.Rel(w.root, full); err == nil && w.matcher.MatchesPath(rel) {
				continue
			}
		}
		if entry.IsDir() {
			w.frontier = append(w.frontier, full)
		} else {
			w.pending = append(w.pending, full)
		}
	}
}
