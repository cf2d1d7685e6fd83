package scan

import (
	"fmt"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Config bounds one scan. Both caps are valid at zero and produce an empty
// (sentinel-only) snapshot; a scan never errors.
type Config struct {
	Root            string // absolute path to an existing directory
	MaxFiles        int    // cap on files read and on excerpts included
	MaxCharsPerFile int    // cap on runes kept per excerpt
	UseGitignore    bool   // also honor the root .gitignore
	SniffBinary     bool   // additionally reject files containing NUL bytes
}

// noFilesSentinel replaces the excerpt blocks when nothing was included,
// so downstream consumers never see a bare header.
const noFilesSentinel = "(no readable source files found)"

// Summarize walks cfg.Root and assembles the bounded snapshot: a header
// line naming the root, then one delimited block per included file,
// separated by blank lines. Per-entry failures are skipped silently;
// Summarize always returns a complete snapshot.
func Summarize(cfg Config) string {
	var matcher *ignore.GitIgnore
	if cfg.UseGitignore {
		matcher, _ = ignore.CompileIgnoreFile(filepath.Join(cfg.Root, ".gitignore"))
	}
	w := NewWalker(cfg.Root, cfg.MaxFiles, matcher)

	var b strings.Builder
	fmt.Fprintf(&b, "Repository: %s\n", cfg.Root)

	included := 0
	for included < cfg.MaxFiles {
		path, ok := w.Next()
		if !ok {
			break
		}
		text, ok := Sample(path, cfg.MaxCharsPerFile, cfg.SniffBinary)
		if !ok {
			continue
		}
		rel := relativeTo(cfg.Root, path)
		fmt.Fprintf(&b, "\n===== BEGIN %s =====\n%s\n===== END %s =====\n", rel, text, rel)
		included++
	}

	if included == 0 {
		b.WriteString("\n" + noFilesSentinel + "\n")
	}
	return b.String()
}

// relativeTo strips root from path, including the single separator joining
// them. Paths outside root (which normal traversal never produces) are
// returned verbatim.
func relativeTo(root, path string) string {
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if strings.HasPrefix(path, prefix) {
		return path[len(prefix):]
	}
	return path
}
