// Package langdetect gates discovered files on their detected language.
// The .rs extension is shared with other languages (RenderScript among
// them), so discovery alone cannot tell whether a file is Rust source.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langRust = "Rust"

// IsRust reports whether the file content looks like Rust source.
// Empty and undetectable content passes the gate; the parser makes the
// final call.
func IsRust(filename string, content []byte) bool {
	if len(bytes.TrimSpace(content)) == 0 {
		return true
	}

	lang := enry.GetLanguage(filepath.Base(filename), content)
	if lang == "" {
		return hasRustMarkers(string(content))
	}
	return lang == langRust
}

// hasRustMarkers checks for highly indicative Rust patterns, used when
// classification is inconclusive.
func hasRustMarkers(content string) bool {
	if strings.Contains(content, "fn ") ||
		strings.Contains(content, "println!") ||
		strings.Contains(content, "let mut ") ||
		strings.Contains(content, "use ") ||
		strings.Contains(content, "impl ") {
		return true
	}
	// Give unclassifiable content the benefit of the doubt.
	return !looksLikeOtherLanguage(content)
}

// looksLikeOtherLanguage catches a few common non-Rust file shapes that
// sometimes end up with a .rs extension.
func looksLikeOtherLanguage(content string) bool {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "<?xml") || strings.HasPrefix(trimmed, "<") {
		return true
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return false
}
