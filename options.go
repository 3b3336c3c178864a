package dllist

import "github.com/mgnsk/dllist/list"

// Option is a list configuration option.
type Option[V any] interface {
	apply(*syncOptions[V])
}

type syncOptions[V any] struct {
	listOpts []list.Option[V]
}

// WithComparator option configures the equality used by list.Value matchers.
//
// The default compares values structurally.
func WithComparator[V any](equal func(a, b V) bool) Option[V] {
	return funcOption[V](func(opts *syncOptions[V]) {
		opts.listOpts = append(opts.listOpts, list.WithComparator(equal))
	})
}

type funcOption[V any] func(*syncOptions[V])

func (o funcOption[V]) apply(opts *syncOptions[V]) {
	o(opts)
}
