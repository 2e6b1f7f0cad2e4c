package enum

import (
	"fmt"
	"reflect"
)

// Builder declares instances as an explicit ordered list of names. It is
// the alternative to Register for declarations whose names are not Go
// identifiers or are computed at startup.
type Builder[T Member] struct {
	entries []entry
	err     error
}

// NewBuilder starts an empty declaration for T.
func NewBuilder[T Member]() *Builder[T] {
	return &Builder[T]{}
}

// Value appends an instance under name. Declaration order is call order.
func (b *Builder[T]) Value(name string, v T) *Builder[T] {
	if b.err != nil {
		return b
	}
	var zero T
	if v == zero {
		b.err = fmt.Errorf("%w: %s.%s", ErrNilMember, reflect.TypeFor[T](), name)
		return b
	}
	b.entries = append(b.entries, entry{name: name, value: v, base: v.enumBase()})
	return b
}

// Len returns the number of declared entries, aliases included.
func (b *Builder[T]) Len() int { return len(b.entries) }

// Register binds the declared instances to T's partition in r. It follows
// the rules of the package-level Register; additionally every entry needs a
// non-empty, unique name and a non-nil instance.
func (b *Builder[T]) Register(r *Registry) (*Partition[T], error) {
	typ, err := memberType[T]()
	if err != nil {
		return nil, r.fail(reflect.TypeFor[T](), err)
	}
	if b.err != nil {
		return nil, r.fail(typ, b.err)
	}
	if err := r.register(typ, b.entries); err != nil {
		return nil, err
	}
	return Of[T](r), nil
}

// MustRegister is like Register but panics on error.
func (b *Builder[T]) MustRegister(r *Registry) *Partition[T] {
	p, err := b.Register(r)
	if err != nil {
		panic(err)
	}
	return p
}
