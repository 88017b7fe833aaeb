package tree

import "github.com/benz9527/xtree/lib/infra"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

// TraversalOrder selects one of the four read-only key productions
// over the current tree shape. All of them are finite, restartable
// and non-mutating.
type TraversalOrder uint8

const (
	// Preorder visits a node before both of its subtrees.
	Preorder TraversalOrder = iota
	// Inorder visits keys in ascending order (descending for a
	// tree built with WithRBTreeDesc). The ordering oracle.
	Inorder
	// Postorder visits a node after both of its subtrees.
	Postorder
	// LevelOrder visits nodes breadth-first, top level down.
	LevelOrder
)

func (order TraversalOrder) String() string {
	switch order {
	case Preorder:
		return "preorder"
	case Inorder:
		return "inorder"
	case Postorder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	}
	return "unknown"
}

// RBNode is the read-only view of a tree node. Child and parent
// links may reference the tree's shared sentinel leaf; HasKey
// reports false for it and true for every real node.
type RBNode[K infra.OrderedKey] interface {
	Key() K
	Color() RBColor
	HasKey() bool
	Left() RBNode[K]
	Right() RBNode[K]
	Parent() RBNode[K]
}

// RBTree is a self-balancing ordered-key container. Insertion keeps
// the red-black coloring invariants, which bounds the height by
// 2*log2(n+1). Duplicate keys are accepted and descend into the
// right subtree. Not safe for unsynchronized concurrent mutation;
// the caller serializes Insert/Clear against any other call.
type RBTree[K infra.OrderedKey] interface {
	Len() int64
	Root() RBNode[K]
	IsEmpty() bool
	Insert(key K)
	Search(key K) (K, bool)
	Minimum() (K, bool)
	Maximum() (K, bool)
	Depth() int64
	Foreach(order TraversalOrder, action func(idx int64, color RBColor, key K) bool)
	Keys(order TraversalOrder) []K
	Clear()
}
