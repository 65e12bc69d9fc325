package callable

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
)

// Module is implemented by every package that compiles glue owner types
// into the binary.
type Module interface {
	Register(c *Catalog)
}

// Catalog maps the owner names used in glue manifests to Go types.
type Catalog struct {
	mu     sync.RWMutex
	owners map[string]reflect.Type
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{owners: make(map[string]reflect.Type)}
}

// Register adds an owner type under name. Registering the same name twice is
// a programming error and panics.
func (c *Catalog) Register(name string, owner reflect.Type) {
	if name == "" || owner == nil {
		panic("callable: owner name and type are required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.owners[name]; exists {
		panic(fmt.Sprintf("owner with name '%s' already registered", name))
	}
	slog.Debug("Registering glue owner.", "name", name, "type", owner.String())
	c.owners[name] = owner
}

// Owner returns the type registered under name.
func (c *Catalog) Owner(name string) (reflect.Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.owners[name]
	return t, ok
}

// Resolve finds method on the owner registered under ownerName.
func (c *Catalog) Resolve(ownerName, method string) (Callable, error) {
	owner, ok := c.Owner(ownerName)
	if !ok {
		return Callable{}, fmt.Errorf("%w: %q", ErrUnknownOwner, ownerName)
	}
	return Of(owner, method)
}

// Names returns the registered owner names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.owners))
	for name := range c.owners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
