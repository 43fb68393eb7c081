package cache

import "github.com/segmentio/datastructures/v3/container/list"

// LRU is an Interface implementation which caches elements and tracks least
// recently used items as candidates for eviction.
//
// Entries are held in a list ordered from the most to the least recently used,
// an index maps keys to the list nodes so lookups can move them to the front
// in constant time.
type LRU[K comparable, V any] struct {
	index map[K]*list.Node[entry[K, V]]
	queue list.List[entry[K, V]]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

func (lru *LRU[K, V]) Len() int {
	return lru.queue.Len()
}

func (lru *LRU[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if lru.index == nil {
		lru.index = make(map[K]*list.Node[entry[K, V]])
	}
	if node, ok := lru.index[key]; ok {
		previous, replaced = node.Value.value, true
		node.Value.value = value
		lru.touch(node)
		return previous, replaced
	}
	lru.index[key] = lru.queue.Unshift(entry[K, V]{key: key, value: value})
	return previous, replaced
}

func (lru *LRU[K, V]) Lookup(key K) (value V, found bool) {
	if node, ok := lru.index[key]; ok {
		lru.touch(node)
		value, found = node.Value.value, true
	}
	return value, found
}

func (lru *LRU[K, V]) Delete(key K) (value V, deleted bool) {
	if node, ok := lru.index[key]; ok {
		delete(lru.index, key)
		lru.queue.Remove(node)
		value, deleted = node.Value.value, true
	}
	return value, deleted
}

func (lru *LRU[K, V]) Evict() (key K, value V, evicted bool) {
	if node := lru.queue.PopNode(); node != nil {
		delete(lru.index, node.Value.key)
		key, value, evicted = node.Value.key, node.Value.value, true
	}
	return key, value, evicted
}

// Range calls f for each entry, from the most to the least recently used.
// Ranging over the entries does not change their order.
func (lru *LRU[K, V]) Range(f func(K, V) bool) {
	for e := range lru.queue.All() {
		if !f(e.key, e.value) {
			break
		}
	}
}

// touch moves node to the front of the queue.
func (lru *LRU[K, V]) touch(node *list.Node[entry[K, V]]) {
	if node != lru.queue.Front() {
		lru.queue.Remove(node)
		lru.queue.UnshiftNode(node)
	}
}
