package rustast

import sitter "github.com/smacker/go-tree-sitter"

// Walk visits every named node in preorder. Returning false from visit
// prunes the subtree under that node.
func Walk(root *sitter.Node, visit func(n *sitter.Node) bool) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		Walk(root.NamedChild(i), visit)
	}
}

// CollectKind returns all named nodes of the given kind in document order.
func CollectKind(root *sitter.Node, kind string) []*sitter.Node {
	var out []*sitter.Node
	Walk(root, func(n *sitter.Node) bool {
		if n.Type() == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

// StartLine returns the 1-based line a node begins on.
func StartLine(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

// StartColumn returns the 1-based column a node begins at.
func StartColumn(n *sitter.Node) int {
	return int(n.StartPoint().Column) + 1
}

// EndLine returns the 1-based line a node ends on.
func EndLine(n *sitter.Node) int {
	return int(n.EndPoint().Row) + 1
}
