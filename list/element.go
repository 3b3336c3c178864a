package list

// Element is a list element.
type Element[V any] struct {
	next, prev *Element[V]
	Value      V
}

// NewElement creates a detached list element.
func NewElement[V any](v V) *Element[V] {
	return &Element[V]{
		Value: v,
	}
}

// Next returns the next element or nil if e is the last element in its list.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// Prev returns the previous element or nil if e is the first element in its list.
func (e *Element[V]) Prev() *Element[V] {
	return e.prev
}

// linkAfter inserts s after this element.
func (e *Element[V]) linkAfter(s *Element[V]) {
	n := e.next
	e.next = s
	s.prev = e
	s.next = n
	if n != nil {
		n.prev = s
	}
}

// linkBefore inserts s before this element.
func (e *Element[V]) linkBefore(s *Element[V]) {
	p := e.prev
	e.prev = s
	s.next = e
	s.prev = p
	if p != nil {
		p.next = s
	}
}

// unlink unlinks this element and clears its links.
func (e *Element[V]) unlink() {
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	e.next = nil
	e.prev = nil
}
