package list

import "iter"

// Every returns true if f returns true for all the values of the list. The
// iteration stops at the first value for which f returns false.
func (l *List[T]) Every(f func(value T, i int, l *List[T]) bool) bool {
	i := 0
	for v := range l.All() {
		if !f(v, i, l) {
			return false
		}
		i++
	}
	return true
}

// Some returns true if f returns true for any of the values of the list.
func (l *List[T]) Some(f func(value T, i int, l *List[T]) bool) bool {
	i := 0
	for v := range l.All() {
		if f(v, i, l) {
			return true
		}
		i++
	}
	return false
}

// ForEach calls f for each value of the list, from front to back.
func (l *List[T]) ForEach(f func(value T, i int, l *List[T])) {
	i := 0
	for v := range l.All() {
		f(v, i, l)
		i++
	}
}

// ForEachRight calls f for each value of the list, from back to front. The
// index passed to f counts the calls, starting at zero for the last value.
func (l *List[T]) ForEachRight(f func(value T, i int, l *List[T])) {
	i := 0
	for v := range l.Backward() {
		f(v, i, l)
		i++
	}
}

// Filter returns a new list holding the values for which f returned true.
func (l *List[T]) Filter(f func(value T, i int, l *List[T]) bool) *List[T] {
	filtered := New[T]()
	i := 0
	for v := range l.All() {
		if f(v, i, l) {
			filtered.Push(v)
		}
		i++
	}
	return filtered
}

// Find returns the first value for which f returns true.
func (l *List[T]) Find(f func(value T, i int, l *List[T]) bool) (value T, found bool) {
	i := 0
	for v := range l.All() {
		if f(v, i, l) {
			return v, true
		}
		i++
	}
	return value, false
}

// FindIndex returns the index of the first value for which f returns true, or
// -1 if there are none.
func (l *List[T]) FindIndex(f func(value T, i int, l *List[T]) bool) int {
	i := 0
	for v := range l.All() {
		if f(v, i, l) {
			return i
		}
		i++
	}
	return -1
}

// Reduce folds the values of the list into one, calling f with the
// accumulated value and each value after the first. The first value seeds the
// accumulation, so the first call to f receives index 1.
//
// Reducing an empty list is an ErrEmptyReduce error; use Fold to provide an
// initial value instead.
func (l *List[T]) Reduce(f func(memo, value T, i int, l *List[T]) T) (T, error) {
	it := l.Iter()
	if !it.Next() {
		var zero T
		return zero, &Error{Code: ErrEmptyReduce, Op: "Reduce", Msg: "cannot reduce empty list with no initial value"}
	}

	memo := it.Value()
	for i := 1; it.Next(); i++ {
		memo = f(memo, it.Value(), i, l)
	}
	return memo, nil
}

// Concat returns a new list holding the values of l followed by the values of
// each of the sequences. Neither l nor the sources are modified.
//
//	c := a.Concat(b.All())
func (l *List[T]) Concat(seqs ...iter.Seq[T]) *List[T] {
	c := New[T]()
	for v := range l.All() {
		c.Push(v)
	}
	for _, seq := range seqs {
		for v := range seq {
			c.Push(v)
		}
	}
	return c
}

// Map returns a new list holding the results of calling f on each value of l,
// in order.
func Map[T, R any](l *List[T], f func(value T, i int, l *List[T]) R) *List[R] {
	mapped := New[R]()
	i := 0
	for v := range l.All() {
		mapped.Push(f(v, i, l))
		i++
	}
	return mapped
}

// Fold is like Reduce but starts the accumulation from initial, which may be
// of a different type than the values of the list. The first call to f
// receives the first value of the list and index 0.
func Fold[T, M any](l *List[T], f func(memo M, value T, i int, l *List[T]) M, initial M) M {
	memo := initial
	i := 0
	for v := range l.All() {
		memo = f(memo, v, i, l)
		i++
	}
	return memo
}

// Includes returns true if value is in the list. The ends of the list are
// checked before scanning it.
func Includes[T comparable](l *List[T], value T) bool {
	if l.head != nil && l.head.Value == value {
		return true
	}
	if l.tail != nil && l.tail.Value == value {
		return true
	}
	return l.Some(func(v T, _ int, _ *List[T]) bool { return v == value })
}

// IndexOf returns the index of the first occurrence of value in the list, or
// -1 if it is absent.
func IndexOf[T comparable](l *List[T], value T) int {
	return l.FindIndex(func(v T, _ int, _ *List[T]) bool { return v == value })
}
