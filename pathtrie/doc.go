// Package pathtrie defines a hierarchical multimap addressed by delimiter-segmented
// paths.
//
// Every node of a Trie holds an ordered list of values and any number of named
// children. A path such as "/usr/bin/vim" addresses the node reached by following
// the children "usr", "bin" and "vim" from the root:
//
//	[root] --+-- [usr] -- [bin] --+-- [bash]: ["5.2"]
//	         |                    |
//	         |                    `-- [vim]: ["9.0", "9.1"]
//	         |
//	         `-- [var] -- [log]: []
//
// Nodes are created on demand by Insert and Replace. Values inserted at the same
// path accumulate in insertion order. Remove detaches a whole subtree.
//
// A single leading delimiter is ignored, so "usr/bin" and "/usr/bin" address the
// same node.
//
// A Trie is not safe for concurrent use. Guard the whole tree with a single lock
// when it is shared between goroutines.
package pathtrie
