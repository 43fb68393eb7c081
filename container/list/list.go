// Package list contains the implementation of a type-safe, generic,
// doubly-linked list.
//
// The List type owns a chain of Node values. Nodes carry the values pushed in
// the list and links to their neighbors; they are exposed so that programs can
// hold references to positions in the list and remove them in constant time,
// or move nodes between lists without allocating:
//
//	l := list.New[string]()
//	l.Push("A")
//	b := l.Push("B")
//	l.Push("C")
//
//	l.Remove(b)
//
//	for v := range l.All() {
//		...
//	}
//
// A node belongs to at most one list at a time. Inserting a node which is
// already held by a list, or removing a node from a list it does not belong
// to, are programming errors and cause panics with an *Error value. Invalid
// arguments, like negative indexes, are reported by returning an *Error.
//
// Lists are not safe to use concurrently from multiple goroutines.
package list

import "iter"

// List values are containers of values which support insertion and removal at
// the front and back of the list, removal of nodes at any position in O(1),
// and positional operations in O(n).
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// New returns a new, empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a new list holding values, in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// Adopt constructs a list from a chain of nodes starting at head. The tail and
// length of the list are computed by walking the chain.
//
// The method panics if any node of the chain already belongs to a list, or if
// the chain loops back on itself; the chain is left unchanged in that case.
// Use Release to detach a chain from the list holding it.
func Adopt[T any](head *Node[T]) *List[T] {
	l := New[T]()
	if head == nil {
		return l
	}

	// The whole chain is checked before any node is claimed, so a panic leaves
	// the nodes untouched. A node seen twice means the chain loops.
	seen := make(map[*Node[T]]struct{})
	for node := head; node != nil; node = node.next {
		if _, loop := seen[node]; loop || node.list != nil {
			panic(&Error{Code: ErrNodeOwned, Op: "Adopt"})
		}
		seen[node] = struct{}{}
	}

	var prev *Node[T]
	for node := head; node != nil; node = node.next {
		l.own("Adopt", node)
		node.prev = prev
		prev = node
		l.size++
	}

	l.head = head
	l.tail = prev
	return l
}

// Release empties the list and returns the head of its chain of nodes. The
// nodes keep their links to each other but are not owned by any list anymore,
// so the chain can be passed to Adopt.
func (l *List[T]) Release() *Node[T] {
	head := l.head
	for node := head; node != nil; node = node.next {
		node.list = nil
	}
	l.reset()
	return head
}

// RemoveAll removes all the nodes from the list.
func (l *List[T]) RemoveAll() {
	for l.ShiftNode() != nil {
	}
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int { return l.size }

// Front returns the first node of the list, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] { return l.head }

// Back returns the last node of the list, or nil if the list is empty.
func (l *List[T]) Back() *Node[T] { return l.tail }

// All returns a sequence of the values in the list, from front to back.
func (l *List[T]) All() iter.Seq[T] { return Forward(l.head).Values() }

// Backward returns a sequence of the values in the list, from back to front.
func (l *List[T]) Backward() iter.Seq[T] { return Backward(l.tail).Values() }

// Nodes returns a sequence of the nodes in the list, from front to back. The
// node being visited may be removed from the list during the iteration.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] { return Forward(l.head).Nodes() }

// Iter returns an iterator positioned before the first node of the list.
func (l *List[T]) Iter() *Iterator[T] { return Forward(l.head) }

// Push appends value at the back of the list and returns the node holding it.
func (l *List[T]) Push(value T) *Node[T] {
	return l.PushNode(&Node[T]{Value: value})
}

// PushNode appends node at the back of the list.
//
// The method panics if node already belongs to a list.
func (l *List[T]) PushNode(node *Node[T]) *Node[T] {
	l.own("PushNode", node)
	l.size++

	if l.tail == nil {
		node.prev, node.next = nil, nil
		l.head, l.tail = node, node
		return node
	}

	l.tail = l.tail.LinkNext(node)
	l.tail.next = nil
	return node
}

// Unshift inserts value at the front of the list and returns the node holding
// it.
func (l *List[T]) Unshift(value T) *Node[T] {
	return l.UnshiftNode(&Node[T]{Value: value})
}

// UnshiftNode inserts node at the front of the list.
//
// The method panics if node already belongs to a list.
func (l *List[T]) UnshiftNode(node *Node[T]) *Node[T] {
	l.own("UnshiftNode", node)
	l.size++

	if l.head == nil {
		node.prev, node.next = nil, nil
		l.head, l.tail = node, node
		return node
	}

	l.head = l.head.LinkPrev(node)
	l.head.prev = nil
	return node
}

// Pop removes the value at the back of the list. The boolean is false if the
// list was empty.
func (l *List[T]) Pop() (value T, ok bool) {
	if node := l.PopNode(); node != nil {
		value, ok = node.Value, true
	}
	return value, ok
}

// PopNode removes and returns the node at the back of the list, or returns nil
// if the list was empty. The returned node is detached and may be inserted in
// another list.
func (l *List[T]) PopNode() *Node[T] {
	node := l.tail
	if node == nil {
		return nil
	}

	l.size--
	l.tail = node.prev
	if l.tail == nil {
		l.head = nil
	}

	l.release(node)
	return node
}

// Shift removes the value at the front of the list. The boolean is false if
// the list was empty.
func (l *List[T]) Shift() (value T, ok bool) {
	if node := l.ShiftNode(); node != nil {
		value, ok = node.Value, true
	}
	return value, ok
}

// ShiftNode removes and returns the node at the front of the list, or returns
// nil if the list was empty.
func (l *List[T]) ShiftNode() *Node[T] {
	node := l.head
	if node == nil {
		return nil
	}

	l.size--
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	}

	l.release(node)
	return node
}

// Remove removes node from the list.
//
// The method panics if node does not belong to the list.
func (l *List[T]) Remove(node *Node[T]) {
	if node == nil || node.list != l {
		panic(&Error{Code: ErrNotMember, Op: "Remove"})
	}

	switch node {
	case l.head:
		l.ShiftNode()
	case l.tail:
		l.PopNode()
	default:
		l.size--
		l.release(node)
	}
}

// Delete removes the value at index, returning false if index is beyond the
// end of the list. A negative index is an ErrInvalidIndex error.
func (l *List[T]) Delete(index int) (bool, error) {
	if index < 0 {
		return false, invalidIndex("Delete", index)
	}
	node := l.node(index)
	if node == nil {
		return false, nil
	}
	l.Remove(node)
	return true, nil
}

// At returns the value at index. The boolean is false if index is beyond the
// end of the list. A negative index is an ErrInvalidIndex error.
func (l *List[T]) At(index int) (value T, ok bool, err error) {
	if index < 0 {
		return value, false, invalidIndex("At", index)
	}
	if node := l.node(index); node != nil {
		value, ok = node.Value, true
	}
	return value, ok, nil
}

// Node returns the node at index, or nil if index is beyond the end of the
// list. A negative index is an ErrInvalidIndex error.
func (l *List[T]) Node(index int) (*Node[T], error) {
	if index < 0 {
		return nil, invalidIndex("Node", index)
	}
	return l.node(index), nil
}

func (l *List[T]) node(index int) *Node[T] {
	i := 0
	for node := range l.Nodes() {
		if i == index {
			return node
		}
		i++
	}
	return nil
}

func (l *List[T]) own(op string, node *Node[T]) {
	if node.list != nil {
		panic(&Error{Code: ErrNodeOwned, Op: op})
	}
	node.list = l
}

func (l *List[T]) release(node *Node[T]) {
	node.Unlink()
	node.list = nil
}

func (l *List[T]) reset() {
	l.head = nil
	l.tail = nil
	l.size = 0
}
