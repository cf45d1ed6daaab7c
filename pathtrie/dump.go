package pathtrie

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Tree renders the subtree as a treeprint.Tree. Every branch is labelled with
// its segment and, when present, its values. Children are sorted.
func (t *Trie[T]) Tree() treeprint.Tree {
	root := t.label
	if root == "" {
		root = t.delim
	}

	tree := treeprint.NewWithRoot(t.display(root))
	t.dump(tree)

	return tree
}

// String implements fmt.Stringer with the rendering of Tree.
func (t *Trie[T]) String() string {
	return t.Tree().String()
}

func (t *Trie[T]) dump(tree treeprint.Tree) {
	for _, key := range t.sortedKeys() {
		next := t.children[key]
		if len(next.children) == 0 {
			tree.AddNode(next.display(key))
			continue
		}
		next.dump(tree.AddBranch(next.display(key)))
	}
}

func (t *Trie[T]) display(label string) string {
	if len(t.values) == 0 {
		return label
	}
	return fmt.Sprintf("%s %v", label, t.values)
}
