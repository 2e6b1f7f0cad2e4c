package enum

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/betterenum/log"
)

// DecodeFunc builds the instance declared under name in a YAML table.
type DecodeFunc[T Member] func(name string, node *yaml.Node) (T, error)

// DecodeNode returns a DecodeFunc that decodes each row into a fresh
// instance from newT using the YAML field tags of T's struct.
func DecodeNode[T Member](newT func() T) DecodeFunc[T] {
	return func(_ string, node *yaml.Node) (T, error) {
		v := newT()
		if err := node.Decode(v); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}

// RegisterYAML registers T from a YAML mapping. Keys are canonical names in
// document order and each value is handed to decode:
//
//	SNAP:
//	  name: Snap
//	CRACKLE:
//	  name: Crackle
func RegisterYAML[T Member](r *Registry, data []byte, decode DecodeFunc[T]) (*Partition[T], error) {
	b, err := tableBuilder(data, decode)
	if err != nil {
		r.logger().ErrorErr(log.CatTable, "load enum table", err, "registry", r.opt.Name)
		return nil, err
	}
	return b.Register(r)
}

func tableBuilder[T Member](data []byte, decode DecodeFunc[T]) (*Builder[T], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse enum table: %w", err)
	}

	b := NewBuilder[T]()
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return b, nil
		}
		root = root.Content[0]
	}
	switch root.Kind {
	case 0:
		return b, nil
	case yaml.MappingNode:
	default:
		return nil, fmt.Errorf("%w: enum table must be a mapping (line %d)", ErrInvalidDeclaration, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: non-scalar key at line %d", ErrInvalidDeclaration, key.Line)
		}
		v, err := decode(key.Value, val)
		if err != nil {
			return nil, fmt.Errorf("decode %s (line %d): %w", key.Value, key.Line, err)
		}
		b.Value(key.Value, v)
	}
	return b, nil
}
