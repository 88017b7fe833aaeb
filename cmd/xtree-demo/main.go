// Illustrative driver for the ordered-key container. Feeds a key set
// (CLI args or a built-in demo set) into the tree and logs the four
// traversal productions plus the query utilities.
package main

import (
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/tree"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	keys := []int64{10, 20, 30, 15, 25, 5, 35, 40, 3, 7}
	if len(os.Args) > 1 {
		keys = keys[:0]
		for _, arg := range os.Args[1:] {
			num, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				logger.Fatal("not an integer key", zap.String("arg", arg), zap.Error(err))
			}
			keys = append(keys, num)
		}
	}

	rbtree := tree.NewRBTree[int64]()
	for _, key := range keys {
		rbtree.Insert(key)
	}
	logger.Info("tree built",
		zap.Int64("len", rbtree.Len()),
		zap.Int64("depth", rbtree.Depth()),
	)

	for _, order := range []tree.TraversalOrder{
		tree.Preorder, tree.Inorder, tree.Postorder, tree.LevelOrder,
	} {
		logger.Info("traversal",
			zap.String("order", order.String()),
			zap.Int64s("keys", rbtree.Keys(order)),
		)
	}

	if minKey, ok := rbtree.Minimum(); ok {
		maxKey, _ := rbtree.Maximum()
		logger.Info("bounds", zap.Int64("min", minKey), zap.Int64("max", maxKey))
	}
}
