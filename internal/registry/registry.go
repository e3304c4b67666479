// Package registry maps generator names to their dataset constructors and
// config types. The registry is an explicit, constructed object with no
// package-level instance, so the set of available generators is always
// the result of a visible registration step, never an import side effect.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/abhisek/taskgym/internal/dataset"
)

var (
	// ErrDuplicateName indicates a second registration under an existing
	// name. The first registration stays intact.
	ErrDuplicateName = errors.New("taskgym: dataset name already registered")
	// ErrUnknownDataset indicates a lookup of a name never registered.
	ErrUnknownDataset = errors.New("taskgym: unknown dataset")
	// ErrConfigMismatch indicates Create was called with a config whose
	// runtime type differs from the registered config type.
	ErrConfigMismatch = errors.New("taskgym: config type mismatch")
	// ErrBadEntry indicates a structurally invalid registration (nil
	// constructor or nil config prototype).
	ErrBadEntry = errors.New("taskgym: invalid registry entry")
)

// Entry associates a generator's config type with its dataset constructor.
type Entry struct {
	// Config is a prototype value of the generator's config type, carrying
	// its defaults. Create requires the caller's config to have exactly
	// this runtime type.
	Config dataset.Config

	// New validates cfg and constructs the dataset.
	New func(cfg dataset.Config) (dataset.Dataset, error)
}

// Registry holds named generator registrations. Safe for concurrent use;
// registration is expected to happen once at startup, lookups thereafter.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds e under name. It fails on a duplicate name, a nil
// constructor, or a nil config prototype; a failed registration leaves the
// registry unchanged.
func (r *Registry) Register(name string, e Entry) error {
	if e.New == nil {
		return fmt.Errorf("%w: %q has no constructor", ErrBadEntry, name)
	}
	if e.Config == nil {
		return fmt.Errorf("%w: %q has no config prototype", ErrBadEntry, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.entries[name] = e
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Create constructs a dataset by registered name. It fails with
// ErrUnknownDataset for an unregistered name and ErrConfigMismatch when
// cfg's runtime type is not the registered config type; otherwise it defers
// to the entry's constructor, which validates cfg before building.
func (r *Registry) Create(name string, cfg dataset.Config) (dataset.Dataset, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	want, got := reflect.TypeOf(e.Config), reflect.TypeOf(cfg)
	if want != got {
		return nil, fmt.Errorf("%w: %q wants %v, got %v", ErrConfigMismatch, name, want, got)
	}
	return e.New(cfg)
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
