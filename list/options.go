package list

import (
	"reflect"

	"github.com/sirkon/deepequal"
)

// Option is a list configuration option.
type Option[V any] interface {
	apply(*listOptions[V])
}

type listOptions[V any] struct {
	equal func(a, b V) bool
}

func newDefaultListOptions[V any]() listOptions[V] {
	return listOptions[V]{
		equal: defaultEqual[V],
	}
}

// WithComparator option configures the equality used by Value matchers.
//
// The default compares values structurally.
func WithComparator[V any](equal func(a, b V) bool) Option[V] {
	return funcOption[V](func(opts *listOptions[V]) {
		if equal == nil {
			panic("list: nil comparator")
		}
		opts.equal = equal
	})
}

type funcOption[V any] func(*listOptions[V])

func (o funcOption[V]) apply(opts *listOptions[V]) {
	o(opts)
}

func defaultEqual[V any](a, b V) bool {
	if reflect.TypeOf(any(a)) != reflect.TypeOf(any(b)) {
		return false
	}
	return deepequal.Equal(a, b)
}
