// Package registry is a concurrent name to value map.
package registry

import "github.com/alphadose/haxmap"

// Registry maps names to values. Lookups are lock-free.
type Registry[T any] interface {
	Get(name string) (T, bool)
	// GetOrAdd returns the existing value for name, or stores the result of
	// valueFn. The bool reports whether the value already existed.
	GetOrAdd(name string, valueFn func() T) (T, bool)
	Len() int
}

type registry[T any] struct {
	values *haxmap.Map[string, T]
}

func New[T any]() Registry[T] {
	return &registry[T]{
		values: haxmap.New[string, T](),
	}
}

func (r *registry[T]) Get(name string) (T, bool) {
	return r.values.Get(name)
}

func (r *registry[T]) GetOrAdd(name string, valueFn func() T) (T, bool) {
	return r.values.GetOrCompute(name, valueFn)
}

func (r *registry[T]) Len() int {
	return int(r.values.Len())
}
