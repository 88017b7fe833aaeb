package tree

import (
	"math"
	randv2 "math/rand"
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/id"
)

func TestNilNode(t *testing.T) {
	var nilNode RBNode[uint64] = nil
	require.True(t, nilNode == nil)

	var nilNode2 *rbNode[uint64] = nil
	nilNode = nilNode2
	require.True(t, nilNode != nil)
	require.Nil(t, nilNode)
	require.False(t, nilNode.HasKey())
}

func TestRBTreeInsert_LeftAndRightRotate(t *testing.T) {
	type checkData struct {
		color RBColor
		key   uint64
	}

	tree := NewRBTree[uint64]()

	tree.Insert(52)
	expected := []checkData{
		{Black, 52},
	}
	tree.Foreach(Inorder, func(idx int64, color RBColor, key uint64) bool {
		require.Equal(t, expected[idx].color, color)
		require.Equal(t, expected[idx].key, key)
		return true
	})
	require.NoError(t, RedViolationValidate(tree))
	require.NoError(t, BlackViolationValidate(tree))

	tree.Insert(47)
	expected = []checkData{
		{Red, 47}, {Black, 52},
	}
	tree.Foreach(Inorder, func(idx int64, color RBColor, key uint64) bool {
		require.Equal(t, expected[idx].color, color)
		require.Equal(t, expected[idx].key, key)
		return true
	})
	require.NoError(t, RedViolationValidate(tree))

	tree.Insert(3)
	expected = []checkData{
		{Red, 3}, {Black, 47}, {Red, 52},
	}
	tree.Foreach(Inorder, func(idx int64, color RBColor, key uint64) bool {
		require.Equal(t, expected[idx].color, color)
		require.Equal(t, expected[idx].key, key)
		return true
	})
	require.NoError(t, RedViolationValidate(tree))
	require.NoError(t, BlackViolationValidate(tree))

	tree.Insert(35)
	expected = []checkData{
		{Black, 3},
		{Red, 35},
		{Black, 47},
		{Black, 52},
	}
	tree.Foreach(Inorder, func(idx int64, color RBColor, key uint64) bool {
		require.Equal(t, expected[idx].color, color)
		require.Equal(t, expected[idx].key, key)
		return true
	})
	require.NoError(t, RedViolationValidate(tree))
	require.NoError(t, BlackViolationValidate(tree))

	tree.Insert(24)
	expected = []checkData{
		{Red, 3},
		{Black, 24},
		{Red, 35},
		{Black, 47},
		{Black, 52},
	}
	tree.Foreach(Inorder, func(idx int64, color RBColor, key uint64) bool {
		require.Equal(t, expected[idx].color, color)
		require.Equal(t, expected[idx].key, key)
		return true
	})
	require.NoError(t, RedViolationValidate(tree))
	require.NoError(t, BlackViolationValidate(tree))
	require.Equal(t, int64(5), tree.Len())

	for _, key := range []uint64{52, 47, 3, 35, 24} {
		k, ok := tree.Search(key)
		require.True(t, ok)
		require.Equal(t, key, k)
	}
	_, ok := tree.Search(92)
	require.False(t, ok)

	minKey, ok := tree.Minimum()
	require.True(t, ok)
	require.Equal(t, uint64(3), minKey)
	maxKey, ok := tree.Maximum()
	require.True(t, ok)
	require.Equal(t, uint64(52), maxKey)
	require.Equal(t, int64(3), tree.Depth())
}

func TestRBTreeInsert_MixedSequence(t *testing.T) {
	tree := NewRBTree[int64]()
	keys := []int64{10, 20, 30, 15, 25, 5, 35, 40, 3, 7}
	for _, key := range keys {
		tree.Insert(key)
		require.NoError(t, InvariantValidate(tree))
	}

	require.Equal(t, []int64{3, 5, 7, 10, 15, 20, 25, 30, 35, 40}, tree.Keys(Inorder))
	require.Equal(t, Black, tree.Root().Color())
	require.Equal(t, int64(len(keys)), tree.Len())

	for _, key := range keys {
		k, ok := tree.Search(key)
		require.True(t, ok)
		require.Equal(t, key, k)
	}
	for _, absent := range []int64{0, 11, 26, 99} {
		_, ok := tree.Search(absent)
		require.False(t, ok)
	}
}

func TestRBTreeInsert_AscendingWorstCase(t *testing.T) {
	type testcase struct {
		name  string
		total int64
	}
	testcases := []testcase{
		{name: "ascending 7", total: 7},
		{name: "ascending 1000", total: 1000},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree := NewRBTree[int64]()
			for i := int64(1); i <= tc.total; i++ {
				tree.Insert(i)
			}
			require.NoError(tt, InvariantValidate(tree))
			// The coloring invariants bound the height by 2*log2(n+1),
			// strictly below the n of a degenerate chain.
			bound := 2.0 * math.Log2(float64(tc.total+1))
			require.LessOrEqual(tt, float64(tree.Depth()), bound)
			require.Less(tt, tree.Depth(), tc.total)
		})
	}
}

func TestRBTreeEmpty(t *testing.T) {
	tree := NewRBTree[uint64]()
	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(0), tree.Len())
	require.Equal(t, int64(0), tree.Depth())
	require.Nil(t, tree.Root())

	_, ok := tree.Minimum()
	require.False(t, ok)
	_, ok = tree.Maximum()
	require.False(t, ok)
	_, ok = tree.Search(1)
	require.False(t, ok)

	for _, order := range []TraversalOrder{Preorder, Inorder, Postorder, LevelOrder} {
		require.Empty(t, tree.Keys(order))
	}
	require.NoError(t, InvariantValidate(tree))
}

func TestRBTreeInsert_SingleKey(t *testing.T) {
	tree := NewRBTree[int]()
	tree.Insert(42)

	root := tree.Root()
	require.Equal(t, 42, root.Key())
	require.Equal(t, Black, root.Color())
	require.False(t, root.Left().HasKey())
	require.False(t, root.Right().HasKey())
	require.Equal(t, Black, root.Left().Color())
	require.Equal(t, Black, root.Right().Color())
	require.Equal(t, int64(1), tree.Depth())
}

func TestRBTreeInsert_StringKeys(t *testing.T) {
	tree := NewRBTree[string]()
	for _, key := range []string{"banana", "apple", "orange", "grape", "kiwi"} {
		tree.Insert(key)
		require.NoError(t, InvariantValidate(tree))
	}
	require.Equal(t, []string{"apple", "banana", "grape", "kiwi", "orange"}, tree.Keys(Inorder))
}

func TestRBTreeInsert_Duplicates(t *testing.T) {
	tree := NewRBTree[uint64]()
	keys := []uint64{7, 3, 7, 9, 7, 3}
	for _, key := range keys {
		tree.Insert(key)
		require.NoError(t, InvariantValidate(tree))
	}

	// Duplicates always succeed and stay discoverable by traversal.
	require.Equal(t, int64(len(keys)), tree.Len())
	require.Equal(t, []uint64{3, 3, 7, 7, 7, 9}, tree.Keys(Inorder))

	k, ok := tree.Search(7)
	require.True(t, ok)
	require.Equal(t, uint64(7), k)
}

func TestRBTreeClear(t *testing.T) {
	tree := NewRBTree[uint64]()
	for i := uint64(0); i < 100; i++ {
		tree.Insert(i)
	}
	require.Equal(t, int64(100), tree.Len())

	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(0), tree.Len())
	require.Equal(t, int64(0), tree.Depth())
	require.Nil(t, tree.Root())
	_, ok := tree.Minimum()
	require.False(t, ok)
	require.Empty(t, tree.Keys(Inorder))

	// A cleared tree behaves like a freshly constructed one.
	tree.Insert(52)
	tree.Insert(47)
	require.Equal(t, []uint64{47, 52}, tree.Keys(Inorder))
	require.NoError(t, InvariantValidate(tree))
}

func TestRBTreeInsert_DescOrder(t *testing.T) {
	tree := NewRBTree[int64](WithRBTreeDesc[int64]())
	for _, key := range []int64{10, 20, 30, 15, 25} {
		tree.Insert(key)
		require.NoError(t, InvariantValidate(tree))
	}
	require.Equal(t, []int64{30, 25, 20, 15, 10}, tree.Keys(Inorder))

	minKey, ok := tree.Minimum()
	require.True(t, ok)
	require.Equal(t, int64(30), minKey)
	maxKey, ok := tree.Maximum()
	require.True(t, ok)
	require.Equal(t, int64(10), maxKey)
}

func rbtreeRandomInsertMonotonicNumberRunCore(t *testing.T, total uint64, violationCheck bool) {
	idGen, _ := id.MonotonicNonZeroID()
	insertElements := make([]uint64, 0, total)

	ignore := uint32(0)
	for uint64(len(insertElements)) < total {
		num := idGen.Number()
		if ignore > 0 {
			ignore--
			continue
		}
		ignore = randv2.Uint32() % 100
		insertElements = append(insertElements, num)
	}
	insertElements = lo.Shuffle(insertElements)

	tree := NewRBTree[uint64]()
	for i := uint64(0); i < total; i++ {
		tree.Insert(insertElements[i])
		if violationCheck {
			require.NoError(t, RedViolationValidate(tree))
			require.NoError(t, BlackViolationValidate(tree))
		}
	}
	require.NoError(t, InvariantValidate(tree))
	require.Equal(t, int64(total), tree.Len())
	require.LessOrEqual(t, float64(tree.Depth()), 2.0*math.Log2(float64(total+1)))

	sort.Slice(insertElements, func(i, j int) bool {
		return insertElements[i] < insertElements[j]
	})
	tree.Foreach(Inorder, func(idx int64, color RBColor, key uint64) bool {
		require.Equal(t, insertElements[idx], key)
		return true
	})
}

func TestRBTreeRandomInsert_MonotonicNumber(t *testing.T) {
	type testcase struct {
		name           string
		total          uint64
		violationCheck bool
	}
	testcases := []testcase{
		{
			name:  "insert 100000",
			total: 100000,
		},
		{
			name:           "violation check 10000",
			total:          10000,
			violationCheck: true,
		},
		{
			name:           "violation check 20000",
			total:          20000,
			violationCheck: true,
		},
	}
	t.Parallel()
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			rbtreeRandomInsertMonotonicNumberRunCore(tt, tc.total, tc.violationCheck)
		})
	}
}

func BenchmarkRBTree_Random(b *testing.B) {
	b.StopTimer()
	tree := NewRBTree[int]()

	rngArr := make([]int, 0, b.N)
	for i := 0; i < b.N; i++ {
		rngArr = append(rngArr, randv2.Int())
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(rngArr[i])
	}
}

func BenchmarkRBTree_Serial(b *testing.B) {
	b.StopTimer()
	tree := NewRBTree[int]()

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(i)
	}
}
