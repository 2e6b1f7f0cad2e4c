package enum

import "errors"

var (
	// ErrNotEnum is returned when the member type is not a pointer to a struct.
	ErrNotEnum = errors.New("enum: type is not a pointer to a struct embedding enum.Enum")
	// ErrInvalidDeclaration is returned when a declaration is not a struct or table.
	ErrInvalidDeclaration = errors.New("enum: invalid declaration")
	// ErrAlreadyRegistered is returned when a type is registered a second time.
	ErrAlreadyRegistered = errors.New("enum: type already registered")
	// ErrAlreadyNamed is returned when an instance already belongs to another partition.
	ErrAlreadyNamed = errors.New("enum: instance already has a canonical name")
	// ErrEmptyName is returned for builder or table entries without a name.
	ErrEmptyName = errors.New("enum: empty name")
	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("enum: duplicate name")
	// ErrNilMember is returned for builder or table entries without an instance.
	ErrNilMember = errors.New("enum: nil instance")
	// ErrSealed is returned when registering into a sealed registry.
	ErrSealed = errors.New("enum: sealed registry")
	// ErrUnregistered is the panic value of String on an instance that was never registered.
	ErrUnregistered = errors.New("enum: instance not registered")
)
