// Package book implements the opening book of spec.md §4.2: an immutable
// prefix tree of known responses loaded once at construction, walked by a
// stateful cursor that tracks the current game.
package book

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Node is one position in the book tree. Best names one of Children by
// move string, or is empty if this node designates no preferred reply.
type Node struct {
	Best     string
	Children map[string]*Node
}

// UnmarshalYAML implements the §4.12 encoding, where a node is a mapping
// whose "best" key (if present) is the preferred child's move string and
// whose remaining keys are child nodes keyed by move string.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	raw := map[string]yaml.Node{}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	n.Children = make(map[string]*Node, len(raw))
	for key, child := range raw {
		if key == "best" {
			if err := child.Decode(&n.Best); err != nil {
				return err
			}
			continue
		}
		childCopy := child
		node := &Node{}
		if err := childCopy.Decode(node); err != nil {
			return err
		}
		n.Children[key] = node
	}
	return nil
}

// Book is the immutable tree loaded once at construction (§3, §4.2).
type Book struct {
	root *Node
}

// Load parses a YAML opening book file (§4.12). An empty path yields an
// empty book whose cursor is null from the start, per §4.2's "if no book
// file is available at construction" clause. A path that cannot be read or
// parsed is returned as an error.
func Load(path string) (*Book, error) {
	if path == "" {
		return &Book{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root := &Node{}
	if err := yaml.Unmarshal(data, root); err != nil {
		return nil, err
	}
	return &Book{root: root}, nil
}

// Cursor is the one piece of mutable state §4.2 allows: a position in the
// book tree for the game in progress. A nil *Node current means "out of
// book"; all queries on a null cursor return none/false.
type Cursor struct {
	book    *Book
	current *Node
}

// NewCursor returns a cursor at the book's root. If the book has no root
// (no file was loaded), the cursor starts out, and stays, null.
func (b *Book) NewCursor() *Cursor {
	if b == nil {
		return &Cursor{}
	}
	return &Cursor{book: b, current: b.root}
}

// Advance implements §4.2's advance(mv_uci): moves the cursor to the named
// child if one exists, else marks it null.
func (c *Cursor) Advance(moveUCI string) {
	if c == nil || c.current == nil {
		return
	}
	child, ok := c.current.Children[moveUCI]
	if !ok {
		c.current = nil
		return
	}
	c.current = child
}

// Best implements §4.2's best(): if the cursor is non-null and its node
// designates a "best" child, return that move and true.
func (c *Cursor) Best() (string, bool) {
	if c == nil || c.current == nil || c.current.Best == "" {
		return "", false
	}
	if _, ok := c.current.Children[c.current.Best]; !ok {
		return "", false
	}
	return c.current.Best, true
}

// Reset implements §4.2's reset(): cursor := root.
func (c *Cursor) Reset() {
	if c == nil || c.book == nil {
		return
	}
	c.current = c.book.root
}

// InBook reports whether the cursor has not yet fallen out of the tree.
func (c *Cursor) InBook() bool {
	return c != nil && c.current != nil
}
