/*
Package dllist implements a doubly linked list guarded by a reader-biased lock.

The unguarded list lives in package list.
*/
package dllist

import (
	"github.com/mgnsk/dllist/list"
	"github.com/puzpuzpuz/xsync/v3"
)

// SyncList is a doubly linked list safe for concurrent use.
//
// Mutations are serialized. Search, Contains, ToSlice, Range and Len
// may run concurrently with each other.
type SyncList[V any] struct {
	mu   *xsync.RBMutex
	list *list.List[V]
}

// New creates an empty list.
func New[V any](opts ...Option[V]) *SyncList[V] {
	o := syncOptions[V]{}
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &SyncList[V]{
		mu:   xsync.NewRBMutex(),
		list: list.New(o.listOpts...),
	}
}

// Len returns the number of values in the list.
func (l *SyncList[V]) Len() int {
	t := l.mu.RLock()
	defer l.mu.RUnlock(t)

	return l.list.Len()
}

// Insert inserts a value at the front of the list.
func (l *SyncList[V]) Insert(value V) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.list.Insert(value)
}

// InsertAfter inserts a value after the first value matching m
// or at the back of the list if nothing matches.
func (l *SyncList[V]) InsertAfter(value V, m list.Matcher[V]) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.list.InsertAfter(value, m)
}

// InsertBefore inserts a value before the first value matching m
// or at the back of the list if nothing matches.
func (l *SyncList[V]) InsertBefore(value V, m list.Matcher[V]) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.list.InsertBefore(value, m)
}

// Delete removes the first value matching m and reports whether it was found.
func (l *SyncList[V]) Delete(m list.Matcher[V]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.list.Delete(m)
}

// Search returns the first value matching m.
func (l *SyncList[V]) Search(m list.Matcher[V]) (value V, ok bool) {
	t := l.mu.RLock()
	defer l.mu.RUnlock(t)

	if e := l.list.Search(m); e != nil {
		return e.Value, true
	}

	var zero V
	return zero, false
}

// Contains reports whether any value matches m.
func (l *SyncList[V]) Contains(m list.Matcher[V]) bool {
	_, ok := l.Search(m)
	return ok
}

// ToSlice returns a snapshot of the values in forward order.
func (l *SyncList[V]) ToSlice() []V {
	t := l.mu.RLock()
	defer l.mu.RUnlock(t)

	return l.list.ToSlice()
}

// Range calls f for each value in forward order.
// If f returns false, Range stops the iteration.
//
// f must not modify the list.
func (l *SyncList[V]) Range(f func(value V) bool) {
	t := l.mu.RLock()
	defer l.mu.RUnlock(t)

	for v := range l.list.All() {
		if !f(v) {
			return
		}
	}
}
