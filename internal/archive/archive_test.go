// File path: internal/archive/archive_test.go
package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/nicodishanthj/legacybridge/internal/project"
)

func buildTree(t *testing.T, entries map[string]string) *project.FileTree {
	t.Helper()
	tree := project.NewFileTree(project.Identity{ClassName: "Employee", ProjectName: "Company.Project"})
	for path, content := range entries {
		if !tree.Put(path, content) {
			t.Fatalf("failed to add %s", path)
		}
	}
	return tree
}

func TestBuildTreeNestingAndOrder(t *testing.T) {
	tree := buildTree(t, map[string]string{
		"App/zeta.cs":          "z",
		"App/Models/Emp.cs":    "e",
		"App/Alpha.cs":         "a",
		"App/Controllers/C.cs": "c",
		"README.md":            "r",
	})
	nodes := BuildTree(tree)
	if len(nodes) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(nodes))
	}
	// Folders before files at every level.
	if !nodes[0].Dir || nodes[0].Name != "App" {
		t.Fatalf("App folder should sort first: %+v", nodes[0])
	}
	if nodes[1].Dir || nodes[1].Name != "README.md" {
		t.Fatalf("README should follow: %+v", nodes[1])
	}
	app := nodes[0]
	if len(app.Children) != 4 {
		t.Fatalf("expected 4 children under App, got %d", len(app.Children))
	}
	wantNames := []string{"Controllers", "Models", "Alpha.cs", "zeta.cs"}
	for i, want := range wantNames {
		if app.Children[i].Name != want {
			t.Fatalf("child %d = %q, want %q (all: %v)", i, app.Children[i].Name, want, names(app.Children))
		}
	}
	if app.Children[1].Children[0].Path != "App/Models/Emp.cs" {
		t.Fatalf("nested path wrong: %+v", app.Children[1].Children[0])
	}
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, node := range nodes {
		out[i] = node.Name
	}
	return out
}

func TestBuildTreeExpandedFlags(t *testing.T) {
	tree := buildTree(t, map[string]string{"A/B/file.cs": "x"})
	nodes := BuildTree(tree)
	if !nodes[0].Expanded || !nodes[0].Children[0].Expanded {
		t.Fatalf("ancestor folders should be expanded: %+v", nodes[0])
	}
	if nodes[0].Children[0].Children[0].Expanded {
		t.Fatalf("files are never expanded")
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	if nodes := BuildTree(nil); nodes != nil {
		t.Fatalf("nil tree should render nothing")
	}
	if nodes := BuildTree(project.NewFileTree(project.Identity{})); nodes != nil {
		t.Fatalf("empty tree should render nothing")
	}
}

func TestWriteZipRoundTrip(t *testing.T) {
	tree := buildTree(t, map[string]string{
		"Project/Models/Employee.cs": "namespace X {}",
		"Project/Program.cs":         "class Program {}",
	})
	var buffer bytes.Buffer
	if err := WriteZip(&buffer, tree); err != nil {
		t.Fatalf("write zip: %v", err)
	}
	reader, err := zip.NewReader(bytes.NewReader(buffer.Bytes()), int64(buffer.Len()))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	if len(reader.File) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(reader.File))
	}
	// Entries come out in sorted path order.
	if reader.File[0].Name != "Project/Models/Employee.cs" || reader.File[1].Name != "Project/Program.cs" {
		t.Fatalf("unexpected entry order: %s, %s", reader.File[0].Name, reader.File[1].Name)
	}
	rc, err := reader.File[1].Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	content, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if string(content) != "class Program {}" {
		t.Fatalf("content mismatch: %q", content)
	}
}

func TestWriteZipNilTree(t *testing.T) {
	if err := WriteZip(&bytes.Buffer{}, nil); err == nil {
		t.Fatalf("nil tree should be an error")
	}
}
