package pathtrie

import (
	"slices"
	"sort"
)

// DefaultDelim is the delimiter used by the tools in this module when none is given.
const DefaultDelim = "/"

// Trie is a node of a path-indexed multimap. The root node is created by New;
// all other nodes are created by Insert and Replace.
type Trie[T any] struct {
	delim    string
	label    string
	values   []T
	children map[string]*Trie[T]
}

// InitTrie resets trie to an empty root node splitting paths by delim.
func InitTrie[T any](trie *Trie[T], delim string) *Trie[T] {
	*trie = Trie[T]{delim: delim}
	return trie
}

// New returns an empty root node splitting paths by delim.
func New[T any](delim string) *Trie[T] {
	return InitTrie(&Trie[T]{}, delim)
}

// Delim returns the path delimiter shared by the whole tree.
func (t *Trie[T]) Delim() string {
	return t.delim
}

// Label returns the segment that leads to the node from its parent.
// It is empty for the root.
func (t *Trie[T]) Label() string {
	return t.label
}

// Values returns the node's own values. The slice is shared with the node.
func (t *Trie[T]) Values() []T {
	return t.values
}

func (t *Trie[T]) child(label string) *Trie[T] {
	return &Trie[T]{
		delim: t.delim,
		label: label,
	}
}

// descend finds or creates the node addressed by path and applies set to it.
// Nodes created on the way are attached only when set has been applied.
func (t *Trie[T]) descend(path string, set func(*Trie[T])) bool {
	if path = trim(path, t.delim); path == "" {
		set(t)
		return true
	}

	head, tail := cut(path, t.delim)
	if head == "" {
		return false
	}

	if next, ok := t.children[head]; ok {
		return next.descend(tail, set)
	}

	next := t.child(head)
	if !next.descend(tail, set) {
		return false
	}
	if t.children == nil {
		t.children = make(map[string]*Trie[T])
	}
	t.children[head] = next

	return true
}

// Insert appends val to the values of the node addressed by path, creating
// missing nodes. It returns false if the path has an empty segment.
func (t *Trie[T]) Insert(path string, val T) bool {
	return t.descend(path, func(n *Trie[T]) {
		n.values = append(n.values, val)
	})
}

// Replace sets the values of the node addressed by path to a copy of vals,
// discarding what was there. Missing nodes are created as by Insert.
func (t *Trie[T]) Replace(path string, vals []T) bool {
	return t.descend(path, func(n *Trie[T]) {
		n.values = slices.Clone(vals)
	})
}

// Remove detaches the node addressed by path together with its whole subtree.
// It returns whether such a node existed. The receiver itself cannot be removed.
func (t *Trie[T]) Remove(path string) bool {
	if path = trim(path, t.delim); path == "" {
		return false
	}

	head, tail := cut(path, t.delim)
	if head == "" {
		return false
	}

	next, ok := t.children[head]
	if !ok {
		return false
	}
	if tail == "" {
		delete(t.children, head)
		return true
	}

	return next.Remove(tail)
}

// NodeForRef returns the live node addressed by path or nil if there is none.
// An empty segment stops the lookup at the current node.
func (t *Trie[T]) NodeForRef(path string) *Trie[T] {
	if path = trim(path, t.delim); path == "" {
		return t
	}

	head, tail := cut(path, t.delim)
	if head == "" {
		return t
	}

	if next, ok := t.children[head]; ok {
		return next.NodeForRef(tail)
	}

	return nil
}

// NodeFor returns a deep copy of the node addressed by path.
func (t *Trie[T]) NodeFor(path string) (*Trie[T], bool) {
	if node := t.NodeForRef(path); node != nil {
		return node.Clone(), true
	}
	return nil, false
}

// FetchRef returns the values of the node addressed by path without copying
// them. The flag is false when the node does not exist.
func (t *Trie[T]) FetchRef(path string) ([]T, bool) {
	if node := t.NodeForRef(path); node != nil {
		return node.values, true
	}
	return nil, false
}

// Fetch returns a copy of the values of the node addressed by path. A missing
// node yields an empty slice.
func (t *Trie[T]) Fetch(path string) []T {
	vals, _ := t.FetchRef(path)
	if len(vals) == 0 {
		return []T{}
	}
	return slices.Clone(vals)
}

// Items returns the values of the whole subtree: the node's own values first,
// then those of every child. Children come in no particular order.
func (t *Trie[T]) Items() []T {
	items := make([]T, 0, t.Len())
	return t.collect(items)
}

func (t *Trie[T]) collect(items []T) []T {
	items = append(items, t.values...)
	for _, next := range t.children {
		items = next.collect(items)
	}
	return items
}

// Len returns the number of values held by the subtree.
func (t *Trie[T]) Len() int {
	num := len(t.values)
	for _, next := range t.children {
		num += next.Len()
	}
	return num
}

// Enumerate returns the labels of the direct children in no particular order.
func (t *Trie[T]) Enumerate() []string {
	keys := make([]string, 0, len(t.children))
	for key := range t.children {
		keys = append(keys, key)
	}
	return keys
}

// Nodes returns copies of the direct children in no particular order.
func (t *Trie[T]) Nodes() []*Trie[T] {
	nodes := make([]*Trie[T], 0, len(t.children))
	for _, next := range t.children {
		nodes = append(nodes, next.Clone())
	}
	return nodes
}

// Clone returns a deep copy of the subtree. Values are copied by assignment.
func (t *Trie[T]) Clone() *Trie[T] {
	cp := &Trie[T]{
		delim:  t.delim,
		label:  t.label,
		values: slices.Clone(t.values),
	}

	if len(t.children) > 0 {
		cp.children = make(map[string]*Trie[T], len(t.children))
		for key, next := range t.children {
			cp.children[key] = next.Clone()
		}
	}

	return cp
}

// Walk calls a handler for every node of the subtree in pre-order, passing the
// node path relative to the receiver ("" for the receiver itself). Children are
// visited in sorted order. The handler continues the walk by returning true or
// aborts it with false. Walk reports whether all the nodes were visited.
func (t *Trie[T]) Walk(handler func(path string, node *Trie[T]) bool) bool {
	return t.walk("", handler)
}

func (t *Trie[T]) walk(path string, handler func(string, *Trie[T]) bool) bool {
	if !handler(path, t) {
		return false
	}
	for _, key := range t.sortedKeys() {
		if !t.children[key].walk(join(path, key, t.delim), handler) {
			return false
		}
	}
	return true
}

func (t *Trie[T]) sortedKeys() []string {
	keys := t.Enumerate()
	sort.Strings(keys)
	return keys
}
