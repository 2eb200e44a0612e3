// Package rustast parses Rust source files into line-indexed syntax trees.
// It wraps tree-sitter with the Rust grammar and exposes the small mutation
// surface analyzers need for auto-fixing, while keeping reads cheap.
package rustast

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
)

// ErrParse indicates the source does not parse as Rust.
var ErrParse = errors.New("parse failure")

// SourceFile is a parsed Rust file: the authoritative line buffer plus the
// tree-sitter tree derived from it.
//
// Reads (Root, Line, NodeText) never modify the file. Mutations
// (ReplaceLine, RemoveLine, InsertLines) edit the line buffer and invalidate
// the tree; the next Root call reparses. Unparse always reflects the current
// line buffer, so fix passes can re-serialize without an explicit rebuild.
type SourceFile struct {
	// Path is the logical file path, used in diagnostics only.
	Path string

	lines           []string
	trailingNewline bool
	tree            *sitter.Tree
	dirty           bool
}

// Parse parses Rust source content into a SourceFile.
// A grammar-level syntax error aborts with an ErrParse-wrapped error that
// names the first offending position; no partial SourceFile is returned.
func Parse(ctx context.Context, path string, content []byte) (*SourceFile, error) {
	text := string(content)

	f := &SourceFile{
		Path:            path,
		trailingNewline: strings.HasSuffix(text, "\n"),
	}
	f.lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	tree, err := parseTree(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.tree = tree

	return f, nil
}

// parseTree runs tree-sitter over content and rejects trees with errors.
func parseTree(ctx context.Context, content []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return nil, fmt.Errorf("%w: no root node", ErrParse)
	}

	if root.HasError() {
		line, col := firstErrorPosition(root)
		tree.Close()
		return nil, fmt.Errorf("%w: syntax error at %d:%d", ErrParse, line, col)
	}

	return tree, nil
}

// firstErrorPosition locates the first ERROR or missing node in the tree.
func firstErrorPosition(root *sitter.Node) (line, col int) {
	line, col = 1, 1

	var walk func(n *sitter.Node) bool
	walk = func(n *sitter.Node) bool {
		if n.IsError() || n.IsMissing() {
			p := n.StartPoint()
			line, col = int(p.Row)+1, int(p.Column)+1
			return true
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if walk(n.Child(i)) {
				return true
			}
		}
		return false
	}
	walk(root)

	return line, col
}

// Root returns the root node of the syntax tree, reparsing first if the line
// buffer was mutated since the last parse. A fix that produced invalid Rust
// surfaces here as an ErrParse-wrapped error.
func (f *SourceFile) Root(ctx context.Context) (*sitter.Node, error) {
	if f.dirty || f.tree == nil {
		tree, err := parseTree(ctx, f.Bytes())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Path, err)
		}
		if f.tree != nil {
			f.tree.Close()
		}
		f.tree = tree
		f.dirty = false
	}
	return f.tree.RootNode(), nil
}

// LineCount returns the number of lines in the file.
func (f *SourceFile) LineCount() int {
	return len(f.lines)
}

// Line returns the 1-based line n. Out-of-range requests report ok=false
// with an empty string rather than an error.
func (f *SourceFile) Line(n int) (text string, ok bool) {
	if n < 1 || n > len(f.lines) {
		return "", false
	}
	return f.lines[n-1], true
}

// NodeText returns the source text covered by a node.
func (f *SourceFile) NodeText(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(f.Bytes())
}

// ReplaceLine replaces the 1-based line n wholesale.
func (f *SourceFile) ReplaceLine(n int, text string) error {
	if n < 1 || n > len(f.lines) {
		return fmt.Errorf("replace line %d: out of range (file has %d lines)", n, len(f.lines))
	}
	f.lines[n-1] = text
	f.dirty = true
	return nil
}

// RemoveLine deletes the 1-based line n.
func (f *SourceFile) RemoveLine(n int) error {
	if n < 1 || n > len(f.lines) {
		return fmt.Errorf("remove line %d: out of range (file has %d lines)", n, len(f.lines))
	}
	f.lines = append(f.lines[:n-1], f.lines[n:]...)
	f.dirty = true
	return nil
}

// InsertLines inserts text lines before the 1-based line n.
// n == LineCount()+1 appends at the end of the file.
func (f *SourceFile) InsertLines(n int, texts ...string) error {
	if n < 1 || n > len(f.lines)+1 {
		return fmt.Errorf("insert at line %d: out of range (file has %d lines)", n, len(f.lines))
	}
	if len(texts) == 0 {
		return nil
	}
	expanded := make([]string, 0, len(f.lines)+len(texts))
	expanded = append(expanded, f.lines[:n-1]...)
	expanded = append(expanded, texts...)
	expanded = append(expanded, f.lines[n-1:]...)
	f.lines = expanded
	f.dirty = true
	return nil
}

// Bytes returns the current file content as bytes.
func (f *SourceFile) Bytes() []byte {
	return []byte(f.Unparse())
}

// Unparse serializes the current line buffer back to source text.
func (f *SourceFile) Unparse() string {
	text := strings.Join(f.lines, "\n")
	if f.trailingNewline {
		text += "\n"
	}
	return text
}

// Clone produces an independent deep copy of the file, reparsed from the
// current content. Mutating the clone never affects the original, which is
// what makes speculative fixes safe.
func (f *SourceFile) Clone(ctx context.Context) (*SourceFile, error) {
	return Parse(ctx, f.Path, f.Bytes())
}

// Close releases the tree-sitter tree. The SourceFile must not be used
// afterwards.
func (f *SourceFile) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}
