package display

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// GroupImports deduplicates and merges use declarations into minimal grouped
// statements.
//
// Imports are deduplicated exactly, keyed by their root module, and roots are
// emitted in alphabetical order. Within a root, paths sharing a common
// ::-delimited prefix collapse into a single `use root::prefix::{a, b};`
// statement; a path equal to the prefix itself is spelled `self` inside the
// braces. The output covers exactly the deduplicated input set.
func GroupImports(imports []string) []string {
	if len(imports) == 0 {
		return nil
	}

	unique := make(map[string]struct{}, len(imports))
	for _, imp := range imports {
		unique[imp] = struct{}{}
	}

	// root module -> paths below it; a single-segment import keeps an
	// empty path and groups under itself.
	grouped := make(map[string][]string)
	for imp := range unique {
		stripped := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(imp, "use "), ";"))

		if root, path, ok := strings.Cut(stripped, "::"); ok {
			grouped[root] = append(grouped[root], path)
		} else {
			grouped[stripped] = append(grouped[stripped], "")
		}
	}

	result := make([]string, 0, len(grouped))

	for _, root := range slices.Sorted(maps.Keys(grouped)) {
		paths := grouped[root]

		switch {
		case len(paths) == 1 && paths[0] != "":
			result = append(result, fmt.Sprintf("use %s::%s;", root, paths[0]))
		case len(paths) == 1:
			result = append(result, fmt.Sprintf("use %s;", root))
		default:
			slices.Sort(paths)

			if prefix := commonPrefix(paths); prefix != "" {
				members := make([]string, len(paths))
				for i, p := range paths {
					// A path equal to the group prefix is spelled self
					// inside the braces: use root::a::{self, b};
					if p == prefix {
						members[i] = "self"
					} else {
						members[i] = strings.TrimPrefix(p, prefix+"::")
					}
				}
				result = append(result, fmt.Sprintf("use %s::%s::{%s};", root, prefix, strings.Join(members, ", ")))
			} else {
				members := make([]string, len(paths))
				for i, p := range paths {
					// The bare root groups as self alongside its children.
					if p == "" {
						members[i] = "self"
					} else {
						members[i] = p
					}
				}
				result = append(result, fmt.Sprintf("use %s::{%s};", root, strings.Join(members, ", ")))
			}
		}
	}

	return result
}

// commonPrefix finds the longest ::-delimited prefix shared by all paths.
// A single path never has a common prefix.
func commonPrefix(paths []string) string {
	if len(paths) < 2 {
		return ""
	}

	parts := make([][]string, len(paths))
	minLen := -1
	for i, p := range paths {
		parts[i] = strings.Split(p, "::")
		if minLen < 0 || len(parts[i]) < minLen {
			minLen = len(parts[i])
		}
	}

	var common []string
	for i := 0; i < minLen; i++ {
		first := parts[0][i]
		shared := true
		for _, p := range parts[1:] {
			if p[i] != first {
				shared = false
				break
			}
		}
		if !shared {
			break
		}
		common = append(common, first)
	}

	return strings.Join(common, "::")
}
