package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/benz9527/xtree/lib/infra"
)

func isNilLeaf[K infra.OrderedKey](node RBNode[K]) bool {
	return node == nil || !node.HasKey()
}

func isBlack[K infra.OrderedKey](node RBNode[K]) bool {
	return isNilLeaf[K](node) || node.Color() == Black
}

func isRed[K infra.OrderedKey](node RBNode[K]) bool {
	return !isNilLeaf[K](node) && node.Color() == Red
}

func isRoot[K infra.OrderedKey](node RBNode[K]) bool {
	return node != nil && isNilLeaf[K](node.Parent())
}

func blackDepthTo[K infra.OrderedKey](target, to RBNode[K]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if isBlack[K](aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

// Inorder traversal to validate the rbtree red-violation property,
// no red node carries a red parent or a red child.
func RedViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	size := tree.Len()
	var aux RBNode[K] = tree.Root()
	if size < 0 || aux == nil {
		return nil
	}

	stack := make([]RBNode[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !isNilLeaf[K](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; isRed[K](aux) {
			if (!isRoot[K](aux.Parent()) && isRed[K](aux.Parent())) ||
				(isRed[K](aux.Left()) || isRed[K](aux.Right())) {
				return errors.New("rbtree red violation")
			}
		}

		stack = stack[:size-1]
		if !isNilLeaf[K](aux.Right()) {
			for aux = aux.Right(); !isNilLeaf[K](aux); aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load all leaves.
func bfsLeaves[K infra.OrderedKey](tree RBTree[K]) []RBNode[K] {
	size := tree.Len()
	var aux RBNode[K] = tree.Root()
	if size < 0 || isNilLeaf[K](aux) {
		return nil
	}

	leaves := make([]RBNode[K], 0, size>>1+1)
	queue := make([]RBNode[K], 0, size>>1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, aux)

	for len(queue) > 0 {
		aux = queue[0]
		l, r := aux.Left(), aux.Right()
		if /* sentinel leaves, keep one */ isNilLeaf[K](l) || isNilLeaf[K](r) {
			leaves = append(leaves, aux)
		}
		if !isNilLeaf[K](l) {
			queue = append(queue, l)
		}
		if !isNilLeaf[K](r) {
			queue = append(queue, r)
		}
		queue = queue[1:]
	}
	return leaves
}

// BlackViolationValidate checks that each leaf node to root node
// black depth is equal.
func BlackViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	leaves := bfsLeaves[K](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[K](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[K](leaves[i], tree.Root()) != blackDepth {
			return errors.New("rbtree black violation")
		}
	}
	return nil
}

// InvariantValidate aggregates every coloring rule: root and sentinel
// are black, no red-red edge, equal black depth on every path.
func InvariantValidate[K infra.OrderedKey](tree RBTree[K]) error {
	var err error
	if root := tree.Root(); root != nil {
		if root.Color() != Black {
			err = multierr.Append(err, errors.New("rbtree root violation"))
		}
		aux := root
		for !isNilLeaf[K](aux) {
			aux = aux.Left()
		}
		if aux != nil && aux.Color() != Black {
			err = multierr.Append(err, errors.New("rbtree sentinel violation"))
		}
	}
	return multierr.Combine(err,
		RedViolationValidate[K](tree),
		BlackViolationValidate[K](tree),
	)
}
