package list

import "iter"

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	head  *Element[V]
	tail  *Element[V]
	len   int
	equal func(a, b V) bool
}

// New creates an empty list.
func New[V any](opts ...Option[V]) *List[V] {
	o := newDefaultListOptions[V]()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &List[V]{
		equal: o.equal,
	}
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	return l.head
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	return l.tail
}

// Insert inserts a value at the front of list l and returns the new element.
func (l *List[V]) Insert(value V) *Element[V] {
	e := NewElement(value)
	if l.head != nil {
		l.head.linkBefore(e)
	} else {
		l.tail = e
	}
	l.head = e
	l.len++
	return e
}

// InsertAfter inserts a value immediately after the first element matching m
// and returns the new element. When no element matches, the value is inserted
// at the back of the list.
func (l *List[V]) InsertAfter(value V, m Matcher[V]) *Element[V] {
	e := NewElement(value)

	if l.head == nil {
		l.pushEmpty(e)
		return e
	}

	match := m.bind(l.comparator())
	for p := l.head; p != nil; p = p.next {
		if p.next == nil {
			p.linkAfter(e)
			l.tail = e
			break
		}
		if match(p.Value) {
			p.linkAfter(e)
			break
		}
	}

	l.len++
	return e
}

// InsertBefore inserts a value immediately before the first element matching m
// and returns the new element. When no element matches, the value is inserted
// at the back of the list.
func (l *List[V]) InsertBefore(value V, m Matcher[V]) *Element[V] {
	e := NewElement(value)

	if l.head == nil {
		l.pushEmpty(e)
		return e
	}

	if mark := l.Search(m); mark != nil {
		mark.linkBefore(e)
		if mark == l.head {
			l.head = e
		}
	} else {
		l.tail.linkAfter(e)
		l.tail = e
	}

	l.len++
	return e
}

// Search returns the first element matching m or nil.
func (l *List[V]) Search(m Matcher[V]) *Element[V] {
	match := m.bind(l.comparator())
	for p := l.head; p != nil; p = p.next {
		if match(p.Value) {
			return p
		}
	}
	return nil
}

// Delete removes the first element matching m.
// It reports whether an element was removed.
func (l *List[V]) Delete(m Matcher[V]) bool {
	e := l.Search(m)
	if e == nil {
		return false
	}

	if e == l.head {
		l.head = e.next
	}
	if e == l.tail {
		l.tail = e.prev
	}
	e.unlink()
	l.len--

	return true
}

// ToSlice returns the values of the list in forward order.
// The returned slice is never nil.
func (l *List[V]) ToSlice() []V {
	values := make([]V, 0, l.len)
	for p := l.head; p != nil; p = p.next {
		values = append(values, p.Value)
	}
	return values
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	for p := l.head; p != nil; p = p.next {
		if !f(p) {
			return
		}
	}
}

// All returns an iterator over the values of the list in forward order.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := l.head; p != nil; p = p.next {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of the list in reverse order.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := l.tail; p != nil; p = p.prev {
			if !yield(p.Value) {
				return
			}
		}
	}
}

func (l *List[V]) pushEmpty(e *Element[V]) {
	l.head = e
	l.tail = e
	l.len++
}

func (l *List[V]) comparator() func(a, b V) bool {
	if l.equal == nil {
		return defaultEqual[V]
	}
	return l.equal
}
