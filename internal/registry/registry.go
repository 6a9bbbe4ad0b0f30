package registry

import (
	"fmt"

	"github.com/nfrund/resumio/internal/config"
	"github.com/samber/do/v2"
)

// Key is a type-safe, generic key for registering and retrieving services.
// The string value should be a unique identifier, e.g., "core.apiclient".
type Key[T any] string

// Registry lets modules share and discover services at runtime. Services are
// stored as named values in a samber/do injector.
type Registry struct {
	injector *do.RootScope
	cfg      config.Provider
}

// New creates a new registry with the application's configuration provider.
func New(cfg config.Provider) *Registry {
	r := &Registry{
		injector: do.New(),
		cfg:      cfg,
	}
	Set(r, ConfigKey, cfg)
	return r
}

// Config returns the configuration provider stored in the registry.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set registers a service instance against a type-safe key, replacing any
// previous value.
func Set[T any](r *Registry, key Key[T], value T) {
	do.OverrideNamedValue(r.injector, string(key), value)
}

// Get retrieves a service by key. It reports false when nothing was stored or
// the stored value is not a T.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	val, err := do.InvokeNamed[T](r.injector, string(key))
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// MustGet retrieves a service or panics if not found. This is useful for
// wiring up essential dependencies at startup.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("service not found for key: %v", key))
	}
	return val
}

// Shutdown releases every registered service that implements one of the
// injector's shutdown interfaces.
func (r *Registry) Shutdown() {
	r.injector.Shutdown()
}
