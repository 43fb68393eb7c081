package list

// Splice removes up to removeCount values starting at index, then inserts
// items in their place. The removed nodes are returned in a new list, in the
// order they had in l.
//
// If index is beyond the end of the list, nothing is removed and the items are
// appended at the back. The items are also appended at the back when index is
// the position of the last value, whether or not it is removed. A negative
// removeCount removes nothing. A negative index is an ErrInvalidIndex error,
// and the list is left unchanged.
//
//	l := list.Of(1, 2, 3, 4, 5, 6)
//	removed, _ := l.Splice(1, 2, 100, 200, 300)
//	// removed: [2 3]
//	// l:       [1 100 200 300 4 5 6]
func (l *List[T]) Splice(index, removeCount int, items ...T) (*List[T], error) {
	if index < 0 {
		return nil, invalidIndex("Splice", index)
	}

	removed := New[T]()
	start := l.node(index)

	if start == nil {
		for _, item := range items {
			l.Push(item)
		}
		return removed, nil
	}

	// The nodes surrounding the removed run. rest must be read from each node
	// before it is removed, since removal clears its links.
	prev, rest := start.prev, start
	atTail := start == l.tail

	for it := Forward(start); removed.size < removeCount && it.Next(); {
		node := it.Node()
		rest = node.next
		l.Remove(node)
		removed.PushNode(node)
	}

	switch {
	case prev == nil:
		for i := len(items) - 1; i >= 0; i-- {
			l.Unshift(items[i])
		}

	case atTail || rest == nil:
		for _, item := range items {
			l.Push(item)
		}

	default:
		inserted := Of(items...)
		if n := inserted.size; n != 0 {
			tail := inserted.tail
			head := inserted.Release()
			for node := head; node != nil; node = node.next {
				l.own("Splice", node)
			}
			prev.LinkNext(head)
			tail.LinkNext(rest)
			l.size += n
		}
	}

	return removed, nil
}
