package list

// Matcher locates an element either by a literal value or by a predicate.
//
// The zero value matches values equal to the zero value of V.
type Matcher[V any] struct {
	value V
	pred  func(V) bool
}

// Value returns a matcher for values equal to v.
//
// Equality is decided by the comparator of the list the matcher is used with.
func Value[V any](v V) Matcher[V] {
	return Matcher[V]{value: v}
}

// Func returns a matcher for values that satisfy f.
func Func[V any](f func(V) bool) Matcher[V] {
	if f == nil {
		panic("list: nil predicate")
	}
	return Matcher[V]{pred: f}
}

// IsFunc reports whether the matcher was created from a predicate.
func (m Matcher[V]) IsFunc() bool {
	return m.pred != nil
}

func (m Matcher[V]) bind(equal func(a, b V) bool) func(V) bool {
	if m.pred != nil {
		return m.pred
	}
	return func(v V) bool {
		return equal(m.value, v)
	}
}
