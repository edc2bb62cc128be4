package btree

// NodeInfo describes a node visited by Walk.
type NodeInfo[C Chunk[C, S], S any] struct {
	Depth    int  // 0 for the root
	Leaf     bool // leaf nodes carry a chunk
	Children int  // number of children of inner nodes
	Summary  S
	Chunk    C
}

// Walk visits all nodes in pre-order. It is intended for debugging and
// visualization.
//
// Iteration stops early if callback returns false.
func (t *Tree[C, S]) Walk(fn func(NodeInfo[C, S]) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.walkNode(t.root, 0, fn)
}

func (t *Tree[C, S]) walkNode(n treeNode[C, S], depth int, fn func(NodeInfo[C, S]) bool) bool {
	assert(n != nil, "walkNode called with nil node")
	if n.isLeaf() {
		leaf := n.(*leafNode[C, S])
		return fn(NodeInfo[C, S]{Depth: depth, Leaf: true, Summary: leaf.summary, Chunk: leaf.chunk})
	}
	inner := n.(*innerNode[C, S])
	if !fn(NodeInfo[C, S]{Depth: depth, Children: len(inner.children), Summary: inner.summary}) {
		return false
	}
	for _, child := range inner.children {
		if !t.walkNode(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// ForEachChunk walks leaf chunks in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[C, S]) ForEachChunk(fn func(chunk C) bool) {
	t.Walk(func(info NodeInfo[C, S]) bool {
		if !info.Leaf {
			return true
		}
		return fn(info.Chunk)
	})
}
