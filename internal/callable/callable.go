// Package callable identifies the user methods that glue is bound to and
// keeps the catalog of owner types compiled into the binary.
package callable

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrUnknownOwner is returned when an owner name has no registered type.
	ErrUnknownOwner = errors.New("unknown owner type")
	// ErrUnknownMethod is returned when the owner has no exported method of
	// the requested name.
	ErrUnknownMethod = errors.New("unknown method")
)

// Callable is an invocable method of an owner type. It is immutable once
// created and holds only comparable identity data, so two Callables built
// for the same method are deep-equal.
type Callable struct {
	owner     reflect.Type
	receiver  reflect.Type
	name      string
	index     int
	signature reflect.Type
}

// Of resolves the exported method name on owner. Methods declared on the
// pointer receiver are found for non-pointer owners as well.
func Of(owner reflect.Type, name string) (Callable, error) {
	if owner == nil {
		return Callable{}, fmt.Errorf("%w: nil owner", ErrUnknownOwner)
	}
	receiver := owner
	if owner.Kind() != reflect.Pointer && owner.Kind() != reflect.Interface {
		receiver = reflect.PointerTo(owner)
	}
	m, ok := receiver.MethodByName(name)
	if !ok {
		return Callable{}, fmt.Errorf("%w: %s has no method %q", ErrUnknownMethod, owner, name)
	}
	return Callable{
		owner:     owner,
		receiver:  receiver,
		name:      m.Name,
		index:     m.Index,
		signature: m.Type,
	}, nil
}

// MustOf is like Of but panics on error. It is meant for compiled-in glue.
func MustOf(owner reflect.Type, name string) Callable {
	c, err := Of(owner, name)
	if err != nil {
		panic(err)
	}
	return c
}

// Owner returns the declaring type as it was registered.
func (c Callable) Owner() reflect.Type { return c.owner }

// Receiver returns the type whose method set holds the method. An instance
// of this type is required to invoke it.
func (c Callable) Receiver() reflect.Type { return c.receiver }

// Name returns the method name.
func (c Callable) Name() string { return c.name }

// Signature returns the method type. For concrete owners the receiver is
// the first input.
func (c Callable) Signature() reflect.Type { return c.signature }

// IsZero reports whether c was never resolved.
func (c Callable) IsZero() bool { return c.owner == nil }

// ParameterTypes lists the method's parameter types without the receiver.
func (c Callable) ParameterTypes() []string {
	if c.signature == nil {
		return nil
	}
	start := 0
	if c.receiver.Kind() != reflect.Interface {
		start = 1
	}
	params := make([]string, 0, c.signature.NumIn()-start)
	for i := start; i < c.signature.NumIn(); i++ {
		params = append(params, c.signature.In(i).String())
	}
	return params
}

// Func returns the method expression value. The first argument of a call is
// the receiver instance.
func (c Callable) Func() reflect.Value {
	if c.receiver == nil {
		return reflect.Value{}
	}
	return c.receiver.Method(c.index).Func
}

// String renders the callable as Owner.Method(params).
func (c Callable) String() string {
	if c.IsZero() {
		return "<unresolved>"
	}
	return fmt.Sprintf("%s.%s(%s)", c.owner, c.name, strings.Join(c.ParameterTypes(), ", "))
}
