package btree

type treeNode[C Chunk[C, S], S any] interface {
	isLeaf() bool
	Summary() S
}

// leafNode holds exactly one non-empty chunk. Nodes are never mutated after
// construction; edits build new nodes along the modified path.
type leafNode[C Chunk[C, S], S any] struct {
	summary S
	chunk   C
}

func (l *leafNode[C, S]) isLeaf() bool { return true }
func (l *leafNode[C, S]) Summary() S   { return l.summary }

type innerNode[C Chunk[C, S], S any] struct {
	summary  S
	children []treeNode[C, S]
}

func (n *innerNode[C, S]) isLeaf() bool { return false }
func (n *innerNode[C, S]) Summary() S   { return n.summary }

// subtree is a node together with its height, used while splitting and
// joining spines. A nil node is the empty subtree.
type subtree[C Chunk[C, S], S any] struct {
	node   treeNode[C, S]
	height int
}

func (st subtree[C, S]) isEmpty() bool {
	return st.node == nil
}
