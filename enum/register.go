package enum

import (
	"fmt"
	"reflect"

	"github.com/zjrosen/betterenum/log"
)

// Register binds the instances declared as fields of decl to T's partition
// in r and returns the partition's view.
//
// decl is a struct or a pointer to one. Its exported fields are scanned in
// declaration order; each field holding a non-nil T contributes one
// instance named after the field. Fields of other types, unexported fields
// and fields tagged `enum:"-"` are ignored. When several fields hold the
// same instance, the first one names it.
//
// A declaration with no instances is logged as a warning and is not an
// error. Registering T a second time returns ErrAlreadyRegistered and keeps
// the first registration.
func Register[T Member](r *Registry, decl any) (*Partition[T], error) {
	typ, err := memberType[T]()
	if err != nil {
		return nil, r.fail(reflect.TypeFor[T](), err)
	}
	entries, err := scan[T](r, typ, decl)
	if err != nil {
		return nil, r.fail(typ, err)
	}
	if err := r.register(typ, entries); err != nil {
		return nil, err
	}
	return Of[T](r), nil
}

// MustRegister is like Register but panics on error. It is meant for
// package-level variable initializers.
func MustRegister[T Member](r *Registry, decl any) *Partition[T] {
	p, err := Register[T](r, decl)
	if err != nil {
		panic(err)
	}
	return p
}

func memberType[T Member]() (reflect.Type, error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotEnum, typ)
	}
	return typ, nil
}

func scan[T Member](r *Registry, typ reflect.Type, decl any) ([]entry, error) {
	v := reflect.ValueOf(decl)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: nil %T", ErrInvalidDeclaration, decl)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T is not a struct", ErrInvalidDeclaration, decl)
	}

	var zero T
	st := v.Type()
	entries := make([]entry, 0, st.NumField())
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() || field.Tag.Get("enum") == "-" {
			continue
		}
		inst, ok := v.Field(i).Interface().(T)
		if !ok {
			continue
		}
		if inst == zero {
			r.logger().Log(log.LevelWarn, log.CatRegistry, "nil enum field skipped",
				"registry", r.opt.Name, "type", typ, "field", field.Name)
			continue
		}
		entries = append(entries, entry{name: field.Name, value: inst, base: inst.enumBase()})
	}
	return entries, nil
}
