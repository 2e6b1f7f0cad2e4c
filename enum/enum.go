package enum

import (
	"fmt"
	"sync/atomic"
)

// Enum is embedded by value in enumerated types. The zero value is an
// unregistered instance; registration binds it to its partition exactly once.
//
// Enum must not be copied after registration.
type Enum struct {
	owner atomic.Pointer[partition]
}

// Member is satisfied by *T for every struct T that embeds Enum.
type Member interface {
	comparable
	enumBase() *Enum
}

func (e *Enum) enumBase() *Enum { return e }

// String returns the canonical name assigned at registration. It panics with
// an error wrapping ErrUnregistered when called on an instance that has not
// been registered.
func (e *Enum) String() string {
	name, err := e.canonicalName()
	if err != nil {
		panic(err)
	}
	return name
}

// Registered reports whether the instance has a canonical name.
func (e *Enum) Registered() bool {
	_, err := e.canonicalName()
	return err == nil
}

func (e *Enum) canonicalName() (string, error) {
	if e == nil {
		return "", fmt.Errorf("%w: nil instance", ErrUnregistered)
	}
	p := e.owner.Load()
	if p == nil {
		return "", fmt.Errorf("%w: String called before registration", ErrUnregistered)
	}
	name, ok := p.nameOf(e)
	if !ok {
		return "", fmt.Errorf("%w: instance missing from %s partition", ErrUnregistered, p.typ)
	}
	return name, nil
}
