package btree

import (
	"fmt"
	"reflect"
)

// Check validates structural tree invariants: uniform leaf depth, fan-out
// bounds of inner nodes, chunk bounds, and cached summaries.
//
// This checker is strict and meant to be used in tests.
func (t *Tree[C, S]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height=0", ErrInvariantViolation)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvariantViolation)
	}
	if inner, ok := t.root.(*innerNode[C, S]); ok && len(inner.children) < 2 {
		return fmt.Errorf("%w: inner root with %d children", ErrInvariantViolation, len(inner.children))
	}
	height, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariantViolation, height, t.height)
	}
	return nil
}

func (t *Tree[C, S]) checkNode(n treeNode[C, S], isRoot bool) (height int, err error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrInvariantViolation)
	}
	if n.isLeaf() {
		leaf := n.(*leafNode[C, S])
		if leaf.chunk.Len() == 0 {
			return 0, fmt.Errorf("%w: empty leaf chunk", ErrInvariantViolation)
		}
		if leaf.chunk.Len() > leaf.chunk.MaxLen() {
			return 0, fmt.Errorf("%w: leaf chunk length %d exceeds %d",
				ErrInvariantViolation, leaf.chunk.Len(), leaf.chunk.MaxLen())
		}
		if !reflect.DeepEqual(leaf.summary, leaf.chunk.Summary()) {
			return 0, fmt.Errorf("%w: stale leaf summary %v", ErrInvariantViolation, leaf.summary)
		}
		return 1, nil
	}
	inner := n.(*innerNode[C, S])
	if len(inner.children) > MaxChildren {
		return 0, fmt.Errorf("%w: child count %d exceeds %d",
			ErrInvariantViolation, len(inner.children), MaxChildren)
	}
	if !isRoot && len(inner.children) < MinChildren {
		return 0, fmt.Errorf("%w: child count %d below %d",
			ErrInvariantViolation, len(inner.children), MinChildren)
	}
	sum := t.cfg.Info.Zero()
	var childHeight int
	for i, child := range inner.children {
		h, err := t.checkNode(child, false)
		if err != nil {
			return 0, err
		}
		if i == 0 {
			childHeight = h
		} else if h != childHeight {
			return 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariantViolation)
		}
		sum = t.cfg.Info.Add(sum, child.Summary())
	}
	if !reflect.DeepEqual(sum, inner.summary) {
		return 0, fmt.Errorf("%w: stale inner summary %v, children add up to %v",
			ErrInvariantViolation, inner.summary, sum)
	}
	return childHeight + 1, nil
}
