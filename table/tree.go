package table

import "strings"

// TreeNode is one node of a renderable tree. Children recurse
// explicitly; Value is optional detail shown after the name.
type TreeNode struct {
	Name     string
	Value    string
	Children []TreeNode
}

// RenderTree renders nodes as a connector tree:
//
//	root
//	├── child: value
//	│   └── grandchild
//	└── last child
//
// Top-level nodes print flush left. Descendants of a last child indent
// with blanks instead of a continuation bar. The output has no trailing
// newline.
func RenderTree(nodes []TreeNode) string {
	var lines []string
	for i := range nodes {
		lines = append(lines, treeLabel(nodes[i]))
		renderChildren(&lines, nodes[i].Children, "")
	}
	return strings.Join(lines, "\n")
}

func renderChildren(lines *[]string, children []TreeNode, prefix string) {
	for i := range children {
		last := i == len(children)-1
		connector, continuation := "├── ", "│   "
		if last {
			connector, continuation = "└── ", "    "
		}
		*lines = append(*lines, prefix+connector+treeLabel(children[i]))
		renderChildren(lines, children[i].Children, prefix+continuation)
	}
}

func treeLabel(n TreeNode) string {
	if n.Value == "" {
		return n.Name
	}
	return n.Name + ": " + n.Value
}
