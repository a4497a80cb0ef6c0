package injekt

import "reflect"

// registry is the store of one live instance per type. Entries are created
// lazily as types are resolved and kept in insertion order; that order is the
// documented tie-break whenever several registered types could satisfy a
// request. The registry itself is not thread-aware; the owning Injector
// serializes all access.
type registry struct {
	instances map[reflect.Type]any
	order     []reflect.Type
}

func newRegistry() *registry {
	return &registry{
		instances: map[reflect.Type]any{},
	}
}

// get returns the instance registered exactly under key t, if any.
func (r *registry) get(t reflect.Type) (any, bool) {
	instance, ok := r.instances[t]
	return instance, ok
}

// put stores or overwrites the entry for t. A type keeps its original
// position in the iteration order when its entry is overwritten.
func (r *registry) put(t reflect.Type, instance any) {
	if _, exists := r.instances[t]; !exists {
		r.order = append(r.order, t)
	}
	r.instances[t] = instance
}

// clear removes all entries. Safe to call on an empty registry.
func (r *registry) clear() {
	r.instances = map[reflect.Type]any{}
	r.order = nil
}

// types returns the registered keys in insertion order. The returned slice
// is the registry's own backing array and must not be mutated by callers.
func (r *registry) types() []reflect.Type {
	return r.order
}
