// Package registry provides a small concurrent key/value store used to
// track in-flight work, backed by a lock-free map.
package registry

import "github.com/alphadose/haxmap"

// Registry is a concurrent map keyed by string identifiers.
type Registry[V any] interface {
	Get(id string) (V, bool)
	Put(id string, value V)
	Del(id string)
	Len() int
}

type registry[V any] struct {
	values *haxmap.Map[string, V]
}

// New returns an empty registry.
func New[V any]() Registry[V] {
	return &registry[V]{
		values: haxmap.New[string, V](),
	}
}

func (r *registry[V]) Get(id string) (V, bool) {
	return r.values.Get(id)
}

func (r *registry[V]) Put(id string, value V) {
	r.values.Set(id, value)
}

func (r *registry[V]) Del(id string) {
	r.values.Del(id)
}

func (r *registry[V]) Len() int {
	return int(r.values.Len())
}
