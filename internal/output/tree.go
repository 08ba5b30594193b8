package output

import (
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "
)

type treeNode struct {
	name     string
	dir      bool
	children map[string]*treeNode
}

func (n *treeNode) child(name string, dir bool) *treeNode {
	if c, ok := n.children[name]; ok {
		return c
	}
	c := &treeNode{name: name, dir: dir, children: map[string]*treeNode{}}
	n.children[name] = c
	return c
}

// sorted returns children with directories first, then by name.
func (n *treeNode) sorted() []*treeNode {
	out := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].dir != out[j].dir {
			return out[i].dir
		}
		return out[i].name < out[j].name
	})
	return out
}

// RenderFileTree renders slash-separated file paths as a tree under root.
func RenderFileTree(root string, files []string) string {
	if len(files) == 0 {
		return ""
	}

	top := &treeNode{name: root, dir: true, children: map[string]*treeNode{}}
	for _, f := range files {
		parts := strings.Split(strings.Trim(f, "/"), "/")
		node := top
		for i, part := range parts {
			node = node.child(part, i < len(parts)-1)
		}
	}

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(root + "/"))
	sb.WriteString("\n")
	writeTree(&sb, top, "")
	return sb.String()
}

func writeTree(sb *strings.Builder, node *treeNode, prefix string) {
	children := node.sorted()
	for i, c := range children {
		last := i == len(children)-1

		connector, nextPrefix := treeEdge, prefix+treeVert
		if last {
			connector, nextPrefix = treeLast, prefix+treeSpace
		}

		name := c.name
		if c.dir {
			name += "/"
		}
		sb.WriteString(StyleDim.Render(prefix+connector) + name)
		sb.WriteString("\n")

		writeTree(sb, c, nextPrefix)
	}
}
