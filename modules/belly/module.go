// Package belly is the glue bundled with the gluebind binary: the cucumber
// "belly" example, expressed as plain Go methods. Its markers are declared
// in belly.hcl.
package belly

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/vk/gluebind/internal/callable"
)

// Module implements the callable.Module interface for this package.
type Module struct{}

// Register registers the owner types of this package with the catalog.
func (m *Module) Register(c *callable.Catalog) {
	c.Register("belly.Steps", reflect.TypeOf(Steps{}))
	c.Register("belly.Types", reflect.TypeOf(Types{}))
}

// Steps holds per-scenario state for the belly steps.
type Steps struct {
	cukes    int
	waited   int
	snapshot []int
}

func (s *Steps) Reset() {
	s.cukes, s.waited, s.snapshot = 0, 0, nil
}

func (s *Steps) HaveCukes(n int) {
	s.cukes = n
}

func (s *Steps) Wait(hours int) {
	s.waited += hours
}

func (s *Steps) Growl() error {
	if s.cukes < 1 {
		return fmt.Errorf("my belly is empty after %d hours", s.waited)
	}
	return nil
}

// Snapshot records the cuke count after every step.
func (s *Steps) Snapshot() {
	s.snapshot = append(s.snapshot, s.cukes)
}

// Types holds the conversions used by the belly steps.
type Types struct{}

// Color is a named colour parsed from a step argument.
type Color string

func (Types) Color(name string) Color {
	return Color(strings.ToLower(name))
}

// Meal is one row of a meal data table.
type Meal struct {
	Food  string
	Count int
}

func (Types) Meal(entry map[string]string) (Meal, error) {
	n, err := strconv.Atoi(entry["count"])
	if err != nil {
		return Meal{}, fmt.Errorf("meal %q: %w", entry["food"], err)
	}
	return Meal{Food: entry["food"], Count: n}, nil
}

func (Types) Recipe(body string) []string {
	return strings.Split(strings.TrimSpace(body), "\n")
}

func (Types) Any(value string, target reflect.Type) (any, error) {
	return value, nil
}

func (Types) Entry(entry map[string]string, target reflect.Type) (any, error) {
	return entry, nil
}

func (Types) Cell(cell string, target reflect.Type) (any, error) {
	return cell, nil
}
