// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sink

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// Options configures a sink created through the registry.
// Backends ignore the fields they have no use for.
type Options struct {
	// Width and Height are the frame dimensions in pixels.
	Width  int
	Height int

	// Title is the window title for windowed backends.
	Title string

	// Scale is the integer window zoom for windowed backends (0 means 1).
	Scale int

	// Interval is the target time between frames for backends that pace
	// the loop themselves.
	Interval time.Duration

	// Path is the output file for file-writing backends.
	Path string

	// Every writes a snapshot every Every frames (0 writes only on Close).
	Every int
}

// WindowScale returns Scale, defaulting to 1.
func (o Options) WindowScale() int {
	if o.Scale < 1 {
		return 1
	}
	return o.Scale
}

// Factory creates a new Sink with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (Sink, error)

// RegistryEntry represents a registered sink backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: GPU windows
	//   - 50-60: native windows (ebiten, SDL)
	//   - 10-20: external players, terminals and files
	//   - 0: headless discard
	Priority int

	// Factory creates sink instances.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered sink backends.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewByName.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewByName creates a sink using a specific backend from the global registry.
func NewByName(name string, opts Options) (Sink, error) {
	return globalRegistry.NewByName(name, opts)
}

// NewBest creates a sink using the best available backend.
func NewBest(opts Options) (Sink, string, error) {
	return globalRegistry.NewBest(opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of the entry for a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// NewBest tries each available backend in priority order and returns the
// first sink that is created successfully, with its backend name.
func (r *Registry) NewBest(opts Options) (Sink, string, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, "", ErrNoBackendAvailable
	}

	var errs []error
	for _, name := range available {
		s, err := r.NewByName(name, opts)
		if err == nil {
			return s, name, nil
		}
		errs = append(errs, err)
	}
	return nil, "", errors.Join(errs...)
}

// NewByName creates a sink using a specific backend.
func (r *Registry) NewByName(name string, opts Options) (Sink, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return entry.Factory(opts)
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. If onlyAvailable is true, filters to available
// backends only. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no sink backends are registered
	// or available on the current system.
	ErrNoBackendAvailable = errors.New("sink: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "sink: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "sink: backend unavailable: " + e.Name
}

// init registers the built-in discard backend.
func init() {
	Register("discard", 0, func(opts Options) (Sink, error) {
		return NewDiscard(opts.Width, opts.Height), nil
	}, nil)
}
