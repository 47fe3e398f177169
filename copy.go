package salin

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is one node in a tree of UI copy: either a Leaf string or a nested
// Tree. Keeping the two shapes as distinct types forces every traversal to
// handle them explicitly.
type Node interface {
	isNode()
}

// Leaf is a single translatable string.
type Leaf string

func (Leaf) isNode() {}

// Field is a single keyed entry in a Tree.
type Field struct {
	Key  string
	Node Node
}

// Tree is an ordered mapping of keys to nested copy. Order survives
// translation and JSON encoding, so the frontend always receives a section
// in the same shape the English source defines.
type Tree []Field

func (Tree) isNode() {}

// Lookup returns the child node for key.
func (t Tree) Lookup(key string) (Node, bool) {
	for _, f := range t {
		if f.Key == key {
			return f.Node, true
		}
	}
	return nil, false
}

// Leaves returns every leaf string in depth-first order.
func (t Tree) Leaves() []string {
	var out []string
	t.walk(func(_ string, leaf string) {
		out = append(out, leaf)
	})
	return out
}

// KeyPaths returns the dot-joined path of every leaf in depth-first order.
func (t Tree) KeyPaths() []string {
	var out []string
	t.walk(func(path string, _ string) {
		out = append(out, path)
	})
	return out
}

func (t Tree) walk(fn func(path, leaf string)) {
	t.walkPrefix("", fn)
}

func (t Tree) walkPrefix(prefix string, fn func(path, leaf string)) {
	for _, f := range t {
		path := f.Key
		if prefix != "" {
			path = prefix + "." + f.Key
		}
		switch n := f.Node.(type) {
		case Leaf:
			fn(path, string(n))
		case Tree:
			n.walkPrefix(path, fn)
		}
	}
}

// Map rebuilds the tree with every leaf replaced by fn(leaf), preserving
// structure and key order. Leaves are visited in the same depth-first order
// as Leaves returns them.
func (t Tree) Map(fn func(string) string) Tree {
	out := make(Tree, len(t))
	for i, f := range t {
		switch n := f.Node.(type) {
		case Leaf:
			out[i] = Field{Key: f.Key, Node: Leaf(fn(string(n)))}
		case Tree:
			out[i] = Field{Key: f.Key, Node: n.Map(fn)}
		}
	}
	return out
}

// MarshalJSON encodes the tree as a JSON object, preserving key order.
func (t Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Node)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into a tree, preserving the key order
// of the document. Values must be strings or nested objects.
func (t *Tree) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("copy tree must be a JSON object, got %v", tok)
	}
	tree, err := decodeTree(dec)
	if err != nil {
		return err
	}
	*t = tree
	return nil
}

// decodeTree reads key/value pairs up to and including the closing brace.
func decodeTree(dec *json.Decoder) (Tree, error) {
	tree := Tree{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("copy tree key must be a string, got %v", tok)
		}
		node, err := decodeNode(dec)
		if err != nil {
			return nil, err
		}
		tree = append(tree, Field{Key: key, Node: node})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return tree, nil
}

func decodeNode(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case string:
		return Leaf(v), nil
	case json.Delim:
		if v == '{' {
			return decodeTree(dec)
		}
	}
	return nil, fmt.Errorf("copy tree values must be strings or nested objects, got %v", tok)
}
