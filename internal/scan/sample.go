package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// binaryExts lists extensions treated as non-text without reading the file.
// Extension-only detection is a deliberate heuristic: a .png is never
// sampled, while a binary blob with no extension slips through unless
// sniffing is enabled.
var binaryExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".ico":  {},
	".pdf":  {},
	".zip":  {},
	".gz":   {},
	".tar":  {},
	".rar":  {},
	".7z":   {},
	".exe":  {},
	".dll":  {},
	".bin":  {},
}

// IsBinaryPath reports whether path's extension marks it as binary.
// The check is case-insensitive; files without an extension are never
// classified as binary by this rule.
func IsBinaryPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	_, ok := binaryExts[ext]
	return ok
}

// Sample reads path and returns its text truncated to at most maxChars
// runes. ok is false when the file is classified binary or cannot be read;
// the caller treats that as "contributes nothing" and moves on. With sniff
// set, files containing a NUL byte are also rejected.
func Sample(path string, maxChars int, sniff bool) (text string, ok bool) {
	if IsBinaryPath(path) {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	if sniff && bytes.IndexByte(data, 0) >= 0 {
		return "", false
	}
	return truncate(decode(data), maxChars), true
}

// decode interprets data as UTF-8, substituting invalid sequences rather
// than failing the scan.
func decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// truncate cuts s to at most max runes, never splitting a multi-byte
// sequence.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
