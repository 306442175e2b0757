package plugin

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a plugin instance from the raw options of a config entry.
// options is nil when the entry names the plugin without options.
type Factory func(options map[string]any) (Plugin, error)

// Registry maps config-file plugin names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name.
// Returns an error if the name is empty or already taken.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if factory == nil {
		return fmt.Errorf("cannot register nil factory for plugin %s", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("plugin %s already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// New instantiates the plugin registered under name.
func (r *Registry) New(name string, options map[string]any) (Plugin, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("plugin %s not found", name)
	}
	p, err := factory(options)
	if err != nil {
		return nil, NewPluginError(name, "load", err)
	}
	if err := p.Metadata().Validate(); err != nil {
		return nil, NewPluginError(name, "load", fmt.Errorf("invalid plugin metadata: %w", err))
	}
	return p, nil
}

// Has checks if a plugin with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}

// Names returns the registered plugin names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// globalRegistry is the registry plugins add themselves to from init.
var globalRegistry = NewRegistry()

// DefaultRegistry returns the global plugin registry.
func DefaultRegistry() *Registry {
	return globalRegistry
}

// Register adds a factory to the global registry.
func Register(name string, factory Factory) error {
	return globalRegistry.Register(name, factory)
}
