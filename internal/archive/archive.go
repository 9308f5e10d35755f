// File path: internal/archive/archive.go
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nicodishanthj/legacybridge/internal/common"
	"github.com/nicodishanthj/legacybridge/internal/project"
)

// Node is one entry of the rendered folder view. Folders sort before files
// and both sort alphabetically within a level.
type Node struct {
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	Dir      bool    `json:"dir"`
	Expanded bool    `json:"expanded,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// BuildTree renders the file tree as nested nodes for the UI folder view.
// The expanded flags come straight from the tree's presentation hint.
func BuildTree(ft *project.FileTree) []*Node {
	if ft == nil || ft.Len() == 0 {
		return nil
	}
	expanded := make(map[string]struct{})
	for _, dir := range ft.ExpandedDirs() {
		expanded[dir] = struct{}{}
	}
	root := &Node{Dir: true}
	index := map[string]*Node{"": root}
	for _, path := range ft.Paths() {
		parts := strings.Split(path, "/")
		parent := root
		for i := range parts {
			prefix := strings.Join(parts[:i+1], "/")
			node, ok := index[prefix]
			if !ok {
				_, isExpanded := expanded[prefix]
				node = &Node{
					Name:     parts[i],
					Path:     prefix,
					Dir:      i < len(parts)-1,
					Expanded: isExpanded,
				}
				index[prefix] = node
				parent.Children = append(parent.Children, node)
			}
			parent = node
		}
	}
	sortNodes(root.Children)
	return root.Children
}

func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Dir != nodes[j].Dir {
			return nodes[i].Dir
		}
		return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
	})
	for _, node := range nodes {
		if len(node.Children) > 0 {
			sortNodes(node.Children)
		}
	}
}

// WriteZip emits the tree as a zip archive: one entry per file, content
// written byte for byte as UTF-8, paths in deterministic order.
func WriteZip(w io.Writer, ft *project.FileTree) error {
	if ft == nil {
		return fmt.Errorf("no project to archive")
	}
	writer := zip.NewWriter(w)
	paths := ft.Paths()
	sort.Strings(paths)
	for _, path := range paths {
		content, ok := ft.Get(path)
		if !ok {
			continue
		}
		entry, err := writer.Create(path)
		if err != nil {
			return fmt.Errorf("create zip entry %s: %w", path, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			return fmt.Errorf("write zip entry %s: %w", path, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize zip: %w", err)
	}
	common.Logger().Info("archive: zip emitted", "entries", len(paths))
	return nil
}
