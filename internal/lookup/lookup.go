// Package lookup provides the instance-resolution capability that glue
// definitions carry until execution time, along with an in-memory
// implementation for local runs.
package lookup

import (
	"fmt"
	"reflect"
	"sync"
)

// Lookup resolves a live instance on which a glue method is invoked.
type Lookup interface {
	Instance(t reflect.Type) (any, error)
}

// InMemory is a thread-safe Lookup that lazily creates one instance per
// owner type and reuses it for every later request.
//
// Struct types resolve to a pointer to a zero value. Pointer-to-struct
// types resolve to the same pointer as their element type, so value and
// pointer receivers share state.
type InMemory struct {
	instances sync.Map // Key: reflect.Type of the struct, Value: pointer to it
}

// NewInMemory creates an empty in-memory lookup.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// Provide registers a prebuilt instance. v must be a non-nil pointer to a
// struct.
func (l *InMemory) Provide(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("lookup: instance must be a non-nil pointer to a struct, got %T", v)
	}
	l.instances.Store(rv.Elem().Type(), v)
	return nil
}

// Instance returns the instance for t, creating it on first use.
func (l *InMemory) Instance(t reflect.Type) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("lookup: nil type")
	}
	elem := t
	if t.Kind() == reflect.Pointer {
		elem = t.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("lookup: cannot instantiate %s", t)
	}

	ptr, _ := l.instances.LoadOrStore(elem, reflect.New(elem).Interface())
	if t.Kind() == reflect.Pointer {
		return ptr, nil
	}
	return reflect.ValueOf(ptr).Elem().Interface(), nil
}
