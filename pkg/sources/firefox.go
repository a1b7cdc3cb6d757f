package sources

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Firefox "Backup bookmarks" JSON node types.
const (
	typePlace     = "text/x-moz-place"
	typeContainer = "text/x-moz-place-container"
	typeSeparator = "text/x-moz-place-separator"
)

// Node is one entry in the export tree. Containers carry Children, places
// carry URI; separators carry neither.
type Node struct {
	GUID         string `json:"guid"`
	Title        string `json:"title"`
	Index        int64  `json:"index"`
	DateAdded    int64  `json:"dateAdded"`    // epoch microseconds
	LastModified int64  `json:"lastModified"` // epoch microseconds
	ID           int64  `json:"id"`
	TypeCode     int64  `json:"typeCode"`
	Type         string `json:"type"`
	Root         string `json:"root,omitempty"`
	URI          string `json:"uri,omitempty"`
	Children     []Node `json:"children,omitempty"`
}

// Firefox walks a parsed bookmark export.
type Firefox struct {
	root Node
}

// ParseRoot decodes a Firefox bookmark export. A document that is not a
// bookmark container at the top level is a fatal error; bad nodes further
// down are dealt with during extraction.
func ParseRoot(r io.Reader) (*Firefox, error) {
	var root Node
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parse bookmark export: %w", err)
	}
	if root.Type != typeContainer {
		return nil, fmt.Errorf("parse bookmark export: root type is %q, want %q", root.Type, typeContainer)
	}
	return &Firefox{root: root}, nil
}

// Leaves flattens the tree depth-first, preserving sibling order. Folder and
// separator nodes contribute nothing themselves; a malformed node is skipped
// with a warning and never aborts the walk.
func (f *Firefox) Leaves() ([]Leaf, []string) {
	var leaves []Leaf
	var warnings []string
	walk(f.root.Children, &leaves, &warnings)
	return leaves, warnings
}

func walk(nodes []Node, leaves *[]Leaf, warnings *[]string) {
	for _, n := range nodes {
		switch n.Type {
		case typeContainer:
			walk(n.Children, leaves, warnings)
		case typeSeparator:
			// nothing to keep
		case typePlace:
			if strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.URI) == "" {
				*warnings = append(*warnings, fmt.Sprintf("skipping bookmark %q: no title and no uri", n.GUID))
				continue
			}
			*leaves = append(*leaves, Leaf{
				Title:        n.Title,
				URI:          n.URI,
				LastModified: n.LastModified,
			})
		default:
			*warnings = append(*warnings, fmt.Sprintf("skipping node %q: unknown type %q", n.GUID, n.Type))
		}
	}
}
