package list

import "iter"

// Iterator is a one-shot cursor walking a chain of nodes in one direction.
//
// The iterator captures the node following the current position before
// exposing it, so the current node may be removed from its list (or relinked
// elsewhere) without breaking the rest of the traversal:
//
//	for it := l.Iter(); it.Next(); {
//		if it.Value() == 0 {
//			l.Remove(it.Node())
//		}
//	}
type Iterator[T any] struct {
	node     *Node[T]
	next     *Node[T]
	backward bool
}

// Forward returns an iterator visiting node and all the nodes after it.
// A nil node produces an empty traversal.
func Forward[T any](node *Node[T]) *Iterator[T] {
	return &Iterator[T]{next: node}
}

// Backward returns an iterator visiting node and all the nodes before it.
func Backward[T any](node *Node[T]) *Iterator[T] {
	return &Iterator[T]{next: node, backward: true}
}

// Next advances the iterator, returning false once the end of the chain was
// reached.
func (it *Iterator[T]) Next() bool {
	it.node = it.next
	if it.node == nil {
		return false
	}
	if it.backward {
		it.next = it.node.prev
	} else {
		it.next = it.node.next
	}
	return true
}

// Node returns the node at the current position, or nil if Next was not
// called or returned false.
func (it *Iterator[T]) Node() *Node[T] { return it.node }

// Value returns the value of the node at the current position. It must only be
// called after Next returned true.
func (it *Iterator[T]) Value() T { return it.node.Value }

// Nodes drains the iterator into a sequence of nodes.
func (it *Iterator[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for it.Next() {
			if !yield(it.node) {
				return
			}
		}
	}
}

// Values drains the iterator into a sequence of values.
func (it *Iterator[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.node.Value) {
				return
			}
		}
	}
}
