package tree

import "sync/atomic"

// Foreach walks the tree in the given order and executes action for
// each node until action returns false or the walk is exhausted. The
// walk is read-only and restartable; recursion depth is bounded by
// the tree height, O(log n) thanks to the coloring invariants.
func (tree *rbTree[K]) Foreach(order TraversalOrder, action func(idx int64, color RBColor, key K) bool) {
	if tree.root == tree.sentinel {
		return
	}

	idx := int64(0)
	visit := func(node *rbNode[K]) bool {
		res := action(idx, node.color, node.key)
		idx++
		return res
	}

	switch order {
	case Preorder:
		tree.preorder(tree.root, visit)
	case Inorder:
		tree.inorder(visit)
	case Postorder:
		tree.postorder(tree.root, visit)
	case LevelOrder:
		tree.levelOrder(visit)
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown traversal order")
	}
}

// Keys collects the traversal production into a slice. Inorder yields
// the keys in sorted order, the ordering oracle of the container.
func (tree *rbTree[K]) Keys(order TraversalOrder) []K {
	keys := make([]K, 0, atomic.LoadInt64(&tree.count))
	tree.Foreach(order, func(idx int64, color RBColor, key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (tree *rbTree[K]) preorder(node *rbNode[K], visit func(*rbNode[K]) bool) bool {
	if node == tree.sentinel {
		return true
	}
	if !visit(node) {
		return false
	}
	if !tree.preorder(node.left, visit) {
		return false
	}
	return tree.preorder(node.right, visit)
}

// Iterative DFS with an explicit stack, descend-left then drain.
func (tree *rbTree[K]) inorder(visit func(*rbNode[K]) bool) {
	stack := make([]*rbNode[K], 0, atomic.LoadInt64(&tree.count)>>1)
	defer func() {
		clear(stack)
	}()

	for aux := tree.root; aux != tree.sentinel; aux = aux.left {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		if !visit(aux) {
			return
		}
		stack = stack[:size-1]
		for aux = aux.right; aux != tree.sentinel; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

func (tree *rbTree[K]) postorder(node *rbNode[K], visit func(*rbNode[K]) bool) bool {
	if node == tree.sentinel {
		return true
	}
	if !tree.postorder(node.left, visit) {
		return false
	}
	if !tree.postorder(node.right, visit) {
		return false
	}
	return visit(node)
}

// BFS with a slice-backed FIFO seeded with the root, sentinel
// children are skipped on enqueue.
func (tree *rbTree[K]) levelOrder(visit func(*rbNode[K]) bool) {
	queue := make([]*rbNode[K], 0, atomic.LoadInt64(&tree.count)>>1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, tree.root)

	for len(queue) > 0 {
		aux := queue[0]
		queue = queue[1:]
		if !visit(aux) {
			return
		}
		if aux.left != tree.sentinel {
			queue = append(queue, aux.left)
		}
		if aux.right != tree.sentinel {
			queue = append(queue, aux.right)
		}
	}
}
