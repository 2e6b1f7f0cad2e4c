package enum

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/zjrosen/betterenum/log"
)

// Options control registry behavior.
type Options struct {
	// Name identifies the registry in log lines.
	Name string

	// Logger receives registration warnings and errors.
	// If nil, the package logger is used.
	Logger *log.Logger
}

// Option modifies Options.
type Option func(*Options)

// WithName sets the name used in log lines.
func WithName(name string) Option { return func(o *Options) { o.Name = name } }

// WithLogger routes registration diagnostics to l.
func WithLogger(l *log.Logger) Option { return func(o *Options) { o.Logger = l } }

// Registry owns one partition per enumerated type. It is safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	partitions map[reflect.Type]*partition
	types      []reflect.Type
	opt        Options
	sealed     atomic.Bool
}

// Default is the process-wide registry.
var Default = NewRegistry(WithName("default"))

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return &Registry{
		partitions: make(map[reflect.Type]*partition),
		opt:        o,
	}
}

// entry is one declared {name, instance} pair.
type entry struct {
	name  string
	value any
	base  *Enum
}

// Sealed reports whether further registrations are refused.
func (r *Registry) Sealed() bool { return r.sealed.Load() }

// Seal refuses every later registration. A registration already in
// progress completes before Seal returns. It returns true if this call
// sealed the registry.
func (r *Registry) Seal() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.sealed.Swap(true)
}

// Types returns the registered member types in registration order.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]reflect.Type(nil), r.types...)
}

func (r *Registry) partition(typ reflect.Type) *partition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.partitions[typ]
}

func (r *Registry) logger() *log.Logger { return r.opt.Logger }

// fail logs err against typ and returns it.
func (r *Registry) fail(typ any, err error) error {
	r.logger().ErrorErr(log.CatRegistry, "registration rejected", err, "registry", r.opt.Name, "type", typ)
	return err
}

// register binds entries to typ's partition. Entries are validated before
// anything is committed, so a failed call leaves the registry unchanged.
func (r *Registry) register(typ reflect.Type, entries []entry) error {
	if r.Sealed() {
		return r.fail(typ, fmt.Errorf("%w: cannot register %s", ErrSealed, typ))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Seal may have taken the lock first.
	if r.Sealed() {
		return r.fail(typ, fmt.Errorf("%w: cannot register %s", ErrSealed, typ))
	}

	p, exists := r.partitions[typ]
	if exists && p.len() > 0 {
		return r.fail(typ, fmt.Errorf("%w: %s", ErrAlreadyRegistered, typ))
	}
	if !exists {
		p = newPartition(typ)
	}

	accepted := make([]entry, 0, len(entries))
	seen := make(map[*Enum]string, len(entries))
	names := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.name == "" {
			return r.fail(typ, fmt.Errorf("%w: %s entry %d", ErrEmptyName, typ, i))
		}
		if _, dup := names[e.name]; dup {
			return r.fail(typ, fmt.Errorf("%w: %s.%s", ErrDuplicateName, typ, e.name))
		}
		names[e.name] = struct{}{}
		if first, alias := seen[e.base]; alias {
			r.logger().Log(log.LevelDebug, log.CatRegistry, "alias skipped",
				"type", typ, "name", e.name, "canonical", first)
			continue
		}
		if owner := e.base.owner.Load(); owner != nil {
			prev, _ := owner.nameOf(e.base)
			return r.fail(typ, fmt.Errorf("%w: %s.%s is already %s.%s", ErrAlreadyNamed, typ, e.name, owner.typ, prev))
		}
		seen[e.base] = e.name
		accepted = append(accepted, e)
	}

	// Claim every instance before publishing any name. Another registry may
	// be registering the same instance under its own lock.
	if err := claim(p, accepted); err != nil {
		return r.fail(typ, err)
	}
	p.mu.Lock()
	for _, e := range accepted {
		p.add(e)
	}
	p.mu.Unlock()

	if !exists {
		r.partitions[typ] = p
		r.types = append(r.types, typ)
	}

	if len(accepted) == 0 {
		r.logger().Log(log.LevelWarn, log.CatRegistry, "no enum instances declared",
			"registry", r.opt.Name, "type", typ)
		return nil
	}
	r.logger().Log(log.LevelDebug, log.CatRegistry, "registered",
		"registry", r.opt.Name, "type", typ, "count", len(accepted))
	return nil
}

// claim makes p the owner of every entry's instance. If any instance is
// already owned, the instances claimed so far are released.
func claim(p *partition, entries []entry) error {
	for i, e := range entries {
		if e.base.owner.CompareAndSwap(nil, p) {
			continue
		}
		for _, done := range entries[:i] {
			done.base.owner.Store(nil)
		}
		return fmt.Errorf("%w: %s.%s is claimed by another registration", ErrAlreadyNamed, p.typ, e.name)
	}
	return nil
}
