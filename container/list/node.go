package list

// Node is a cell of a doubly-linked list, holding one value and links to its
// neighbors.
//
// Nodes do not own their neighbors, the List they are part of does. The link
// methods of Node are raw primitives which only maintain the symmetry of the
// links they touch; programs that manipulate nodes held by a List must go
// through the List methods, or the list length and ends will go out of sync.
type Node[T any] struct {
	Value T

	prev *Node[T]
	next *Node[T]
	list *List[T]
}

// NewNode constructs a node holding value. The prev and next links are stored
// as-is, the neighbors are not modified to point back at the new node.
func NewNode[T any](value T, prev, next *Node[T]) *Node[T] {
	return &Node[T]{Value: value, prev: prev, next: next}
}

// Prev returns the node before n, or nil.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Next returns the node after n, or nil.
func (n *Node[T]) Next() *Node[T] { return n.next }

// List returns the list that n is part of, or nil if n is not held by a list.
func (n *Node[T]) List() *List[T] { return n.list }

// LinkNext sets the node after n to next, and if next is not nil, sets the
// node before next to n. The node previously after n is left untouched.
//
// The method returns next, which allows chaining calls:
//
//	a.LinkNext(b).LinkNext(c)
func (n *Node[T]) LinkNext(next *Node[T]) *Node[T] {
	n.next = next
	if next != nil {
		next.prev = n
	}
	return next
}

// LinkPrev is the mirror of LinkNext, it sets the node before n to prev and
// the node after prev to n.
func (n *Node[T]) LinkPrev(prev *Node[T]) *Node[T] {
	n.prev = prev
	if prev != nil {
		prev.next = n
	}
	return prev
}

// Unlink removes n from the chain it is part of, connecting its neighbors
// together, then clears both of its links. The value is retained so the node
// can be inserted elsewhere.
func (n *Node[T]) Unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}
