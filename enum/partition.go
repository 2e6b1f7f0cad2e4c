package enum

import (
	"reflect"
	"sync"
)

// partition is the per-type forward and reverse mapping. Members are kept in
// declaration order; forward indexes into members.
type partition struct {
	typ reflect.Type

	mu      sync.RWMutex
	names   []string
	members []any
	forward map[string]int
	reverse map[*Enum]string
}

func newPartition(typ reflect.Type) *partition {
	return &partition{
		typ:     typ,
		forward: make(map[string]int),
		reverse: make(map[*Enum]string),
	}
}

// add must be called with mu held.
func (p *partition) add(e entry) {
	p.forward[e.name] = len(p.members)
	p.reverse[e.base] = e.name
	p.names = append(p.names, e.name)
	p.members = append(p.members, e.value)
}

func (p *partition) len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.members)
}

func (p *partition) lookup(name string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	i, ok := p.forward[name]
	if !ok {
		return nil, false
	}
	return p.members[i], true
}

func (p *partition) nameOf(e *Enum) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	name, ok := p.reverse[e]
	return name, ok
}

func (p *partition) snapshot() ([]string, []any) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, len(p.names))
	copy(names, p.names)
	members := make([]any, len(p.members))
	copy(members, p.members)
	return names, members
}

// Partition is a typed view of the instances registered for T in one
// Registry. It resolves the registry on every call, so a view taken before
// registration sees the instances once they are registered.
type Partition[T Member] struct {
	reg *Registry
	typ reflect.Type
}

// Of returns the view of T's partition in r.
func Of[T Member](r *Registry) *Partition[T] {
	return &Partition[T]{reg: r, typ: reflect.TypeFor[T]()}
}

// Type returns the member type the partition is keyed by.
func (p *Partition[T]) Type() reflect.Type { return p.typ }

// FromString returns the instance registered under exactly name. The second
// result is false when no such instance exists, including before registration.
func (p *Partition[T]) FromString(name string) (T, bool) {
	var zero T
	part := p.reg.partition(p.typ)
	if part == nil {
		return zero, false
	}
	v, ok := part.lookup(name)
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Values returns every instance in declaration order. The slice is a fresh
// copy and is empty, never nil, when nothing is registered.
func (p *Partition[T]) Values() []T {
	part := p.reg.partition(p.typ)
	if part == nil {
		return []T{}
	}
	_, members := part.snapshot()
	out := make([]T, len(members))
	for i, m := range members {
		out[i] = m.(T)
	}
	return out
}

// Names returns the canonical names in declaration order.
func (p *Partition[T]) Names() []string {
	part := p.reg.partition(p.typ)
	if part == nil {
		return []string{}
	}
	names, _ := part.snapshot()
	return names
}

// Len returns the number of registered instances.
func (p *Partition[T]) Len() int {
	part := p.reg.partition(p.typ)
	if part == nil {
		return 0
	}
	return part.len()
}

// Contains reports whether v is one of the registered instances.
func (p *Partition[T]) Contains(v T) bool {
	var zero T
	if v == zero {
		return false
	}
	part := p.reg.partition(p.typ)
	if part == nil {
		return false
	}
	_, ok := part.nameOf(v.enumBase())
	return ok
}
