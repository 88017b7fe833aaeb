package tree

import (
	"sync/atomic"

	"github.com/benz9527/xtree/lib/infra"
)

type rbNode[K infra.OrderedKey] struct {
	parent *rbNode[K]
	left   *rbNode[K]
	right  *rbNode[K]
	key    K
	color  RBColor
	hasKey bool
}

func (node *rbNode[K]) Color() RBColor {
	return node.color
}

func (node *rbNode[K]) Key() K {
	return node.key
}

func (node *rbNode[K]) HasKey() bool {
	if node == nil {
		return false
	}
	return node.hasKey
}

func (node *rbNode[K]) Left() RBNode[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K]) Parent() RBNode[K] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K]) Right() RBNode[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. The sentinel leaf is black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of the sentinel leaves
//   below it goes through the same number of black nodes. (black-violation)
// p5. The root is black (or the tree is empty, root == sentinel).
// So the shortest path nodes are black nodes. Otherwise,
// the path must contain red node.
// The longest path nodes' number is 2 * shortest path nodes' number.
//
// Every "no child" link points to one shared per-tree sentinel node
// instead of nil. Rotation and fix-up code writes through such links
// unconditionally; the sentinel's own parent field may be scribbled
// on and is never read.
type rbTree[K infra.OrderedKey] struct {
	root     *rbNode[K]
	sentinel *rbNode[K]
	count    int64
	isDesc   bool
}

func (tree *rbTree[K]) keyCompare(k1, k2 K) int64 {
	if k1 == k2 {
		return 0
	} else if k1 < k2 {
		if !tree.isDesc {
			return -1
		}
		return 1
	} else {
		if !tree.isDesc {
			return 1
		}
		return -1
	}
}

func (tree *rbTree[K]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *rbTree[K]) IsEmpty() bool {
	return tree.root == tree.sentinel
}

func (tree *rbTree[K]) Root() RBNode[K] {
	if tree.root == tree.sentinel {
		return nil
	}
	return tree.root
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K]) leftRotate(x *rbNode[K]) {
	if x == nil || x.right == tree.sentinel {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is the sentinel")
	}

	y := x.right
	x.right = y.left
	y.left.parent = x // may scribble on the sentinel's parent, never read
	y.parent = x.parent
	if x.parent == tree.sentinel {
		tree.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

/*
		 |                         |
		 X                         S
		/ \     rightRotate(S)    / \
	   L   S    <============    X   R
		  / \                   / \
		Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K]) rightRotate(x *rbNode[K]) {
	if x == nil || x.left == tree.sentinel {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is the sentinel")
	}

	y := x.left
	x.left = y.right
	y.right.parent = x // may scribble on the sentinel's parent, never read
	y.parent = x.parent
	if x.parent == tree.sentinel {
		tree.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// Insert never rejects a key. An equal key descends into the right
// subtree, so duplicates accumulate as right-descendants of the first
// occurrence; traversals report them all while Search reports the
// first one on the unique search path.
func (tree *rbTree[K]) Insert(key K) {
	var x, y *rbNode[K] = tree.root, tree.sentinel
	for x != tree.sentinel {
		y = x
		if /* less */ tree.keyCompare(key, x.key) < 0 {
			x = x.left
		} else /* greater or tie, ties descend right */ {
			x = x.right
		}
	}

	z := &rbNode[K]{
		key:    key,
		color:  Red,
		parent: y,
		left:   tree.sentinel,
		right:  tree.sentinel,
		hasKey: true,
	}
	if y == tree.sentinel {
		tree.root = z
	} else if tree.keyCompare(key, y.key) < 0 {
		y.left = z
	} else {
		y.right = z
	}
	atomic.AddInt64(&tree.count, 1)

	// A fresh root or a root's direct child cannot form a red-red
	// edge, the root going in is always black. Skip the fix-up loop
	// and only re-assert the root color.
	if z.parent == tree.sentinel || z.parent.parent == tree.sentinel {
		tree.root.color = Black
		return
	}
	tree.insertRebalance(z)
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or the sentinel).

im1: Both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainting, G may still take part in a red-violation two levels
up. Continue the loop from G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im2: The parent P is red but the uncle U is black, and X is the
opposite direction to P (inner grandchild). Rotate P towards the
outside to reduce to im3.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im3: X is the same direction as P (outer grandchild). Repaint and
rotate G away from P. Black-heights are restored, the loop ends.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]

The whole case analysis is mirrored depending on whether P hangs off
G's left or right side. The sentinel is black, so the loop condition
also terminates at the root whose parent link is the sentinel.
*/
func (tree *rbTree[K]) insertRebalance(z *rbNode[K]) {
	for z.parent.color == Red {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if /* im1 */ uncle.color == Red {
				z.parent.color = Black
				uncle.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if /* im2 */ z == z.parent.right {
					z = z.parent
					tree.leftRotate(z)
				}
				/* im3 */
				z.parent.color = Black
				z.parent.parent.color = Red
				tree.rightRotate(z.parent.parent)
			}
		} else {
			// mirror side
			uncle := z.parent.parent.left
			if /* im1 */ uncle.color == Red {
				z.parent.color = Black
				uncle.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if /* im2 */ z == z.parent.left {
					z = z.parent
					tree.rightRotate(z)
				}
				/* im3 */
				z.parent.color = Black
				z.parent.parent.color = Red
				tree.leftRotate(z.parent.parent)
			}
		}
	}
	tree.root.color = Black
}

// Search reports whether some node compares equal to key. Absence is
// a false flag, never an error.
func (tree *rbTree[K]) Search(key K) (K, bool) {
	for aux := tree.root; aux != tree.sentinel; {
		res := tree.keyCompare(key, aux.key)
		if res == 0 {
			return aux.key, true
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return *new(K), false
}

func (tree *rbTree[K]) Minimum() (K, bool) {
	if tree.root == tree.sentinel {
		return *new(K), false
	}
	aux := tree.root
	for aux.left != tree.sentinel {
		aux = aux.left
	}
	return aux.key, true
}

func (tree *rbTree[K]) Maximum() (K, bool) {
	if tree.root == tree.sentinel {
		return *new(K), false
	}
	aux := tree.root
	for aux.right != tree.sentinel {
		aux = aux.right
	}
	return aux.key, true
}

// Depth is the height of the tree in node-count terms (not the
// black-height), 0 for an empty tree.
func (tree *rbTree[K]) Depth() int64 {
	return tree.depth(tree.root)
}

func (tree *rbTree[K]) depth(node *rbNode[K]) int64 {
	if node == tree.sentinel {
		return 0
	}
	l, r := tree.depth(node.left), tree.depth(node.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Clear resets the root back to the sentinel. The whole reachable
// node set is abandoned to the garbage collector; afterwards the tree
// behaves identically to a freshly constructed one.
func (tree *rbTree[K]) Clear() {
	tree.root = tree.sentinel
	atomic.StoreInt64(&tree.count, 0)
}

type RBTreeOpt[K infra.OrderedKey] func(*rbTree[K])

func WithRBTreeDesc[K infra.OrderedKey]() RBTreeOpt[K] {
	return func(tree *rbTree[K]) {
		tree.isDesc = true
	}
}

func NewRBTree[K infra.OrderedKey](opts ...RBTreeOpt[K]) RBTree[K] {
	sentinel := &rbNode[K]{color: Black}
	tree := &rbTree[K]{
		root:     sentinel,
		sentinel: sentinel,
		count:    0,
		isDesc:   false,
	}

	for _, o := range opts {
		o(tree)
	}
	return tree
}
