package output

import (
	"path"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 34
)

// TreeNode is a node in a rendered file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// RenderFileTree renders slash-separated relative file paths below rootName.
// describe, when non-nil, supplies a description per path shown aligned on
// the right.
func RenderFileTree(rootName string, files []string, describe func(relPath string) string) string {
	if len(files) == 0 {
		return ""
	}

	root := &TreeNode{Name: rootName, IsDir: true}
	for _, f := range files {
		insert(root, f, describe)
	}
	sortTree(root)

	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

func insert(root *TreeNode, relPath string, describe func(string) string) {
	parts := strings.Split(path.Clean(relPath), "/")
	current := root

	for i, part := range parts {
		isLast := i == len(parts)-1

		var child *TreeNode
		for _, c := range current.Children {
			if c.Name == part {
				child = c
				break
			}
		}
		if child == nil {
			child = &TreeNode{Name: part, IsDir: !isLast}
			current.Children = append(current.Children, child)
		}
		if isLast && describe != nil {
			child.Description = describe(relPath)
		}
		current = child
	}
}

// sortTree orders directories before files, then by name.
func sortTree(node *TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, child := range node.Children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	styles := GetStyles()

	if isRoot {
		sb.WriteString(styles.Bold.Render(node.Name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name = styles.Noun.Render(name + "/")
		}
		width := utf8.RuneCountInString(prefix + connector + node.Name)
		line := prefix + connector + name

		if node.Description != "" {
			padding := descriptionColumn - width
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + styles.Muted.Render(node.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childPrefix := ""
		if !isRoot {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}
		renderNode(sb, child, childPrefix, false, i == len(node.Children)-1)
	}
}
