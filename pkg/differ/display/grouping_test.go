package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupImportsDeduplicates(t *testing.T) {
	result := GroupImports([]string{"use std::fs::write;", "use std::fs::write;"})
	assert.Equal(t, []string{"use std::fs::write;"}, result)
}

func TestGroupImportsSameRoot(t *testing.T) {
	result := GroupImports([]string{
		"use std::fs::write;",
		"use std::fs::write;",
		"use std::io::read;",
	})
	assert.Equal(t, []string{"use std::{fs::write, io::read};"}, result)
}

func TestGroupImportsCommonPath(t *testing.T) {
	result := GroupImports([]string{
		"use syn::visit::visit_file;",
		"use syn::visit::visit_expr;",
	})
	assert.Equal(t, []string{"use syn::visit::{visit_expr, visit_file};"}, result)
}

func TestGroupImportsMultipleRoots(t *testing.T) {
	result := GroupImports([]string{
		"use syn::visit::visit_file;",
		"use std::fs::write;",
	})

	// Roots are sorted alphabetically, not by first appearance.
	require.Len(t, result, 2)
	assert.Equal(t, "use std::fs::write;", result[0])
	assert.Equal(t, "use syn::visit::visit_file;", result[1])
}

func TestGroupImportsSingleSegment(t *testing.T) {
	result := GroupImports([]string{"use anyhow;"})
	assert.Equal(t, []string{"use anyhow;"}, result)
}

func TestGroupImportsEmpty(t *testing.T) {
	assert.Empty(t, GroupImports(nil))
}

func TestGroupImportsPathEqualToPrefix(t *testing.T) {
	result := GroupImports([]string{
		"use root::a;",
		"use root::a::b;",
	})
	assert.Equal(t, []string{"use root::a::{self, b};"}, result)
}

func TestGroupImportsBareRootWithChild(t *testing.T) {
	result := GroupImports([]string{
		"use std;",
		"use std::fs;",
	})
	assert.Equal(t, []string{"use std::{self, fs};"}, result)
}

func TestGroupImportsDeepCommonPrefix(t *testing.T) {
	result := GroupImports([]string{
		"use a::b::c;",
		"use a::b::d;",
		"use a::b::e;",
	})
	assert.Equal(t, []string{"use a::b::{c, d, e};"}, result)
}

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"shared segment", []string{"visit::visit_file", "visit::visit_expr"}, "visit"},
		{"no shared segment", []string{"fs::read", "io::write"}, ""},
		{"two shared segments", []string{"b::c::x", "b::c::y", "b::c::z"}, "b::c"},
		{"single path", []string{"test::path"}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commonPrefix(tt.paths))
		})
	}
}
