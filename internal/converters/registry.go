package converters

import (
	"sync"

	"github.com/KirkDiggler/rpg-babele/internal/errors"
)

// MemoryRegistry is an in-process converter registry. It is the registry the
// server hands to Register and later resolves converters from.
type MemoryRegistry struct {
	mu         sync.RWMutex
	converters map[string]Converter
}

// NewRegistry creates an empty registry
func NewRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		converters: make(map[string]Converter),
	}
}

// RegisterConverters adds converters, replacing any with the same name.
// Nothing is registered when an entry is invalid.
func (r *MemoryRegistry) RegisterConverters(converters map[string]Converter) error {
	if len(converters) == 0 {
		return errors.InvalidArgument("no converters to register")
	}

	vb := errors.NewValidationBuilder()
	for name, fn := range converters {
		if name == "" {
			vb.RequiredField("name")
			continue
		}
		if fn == nil {
			vb.Field(name, "converter function is nil")
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for name, fn := range converters {
		r.converters[name] = fn
	}
	return nil
}

// Lookup returns the converter registered under name
func (r *MemoryRegistry) Lookup(name string) (Converter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.converters[name]
	if !ok {
		return nil, errors.NotFoundf("converter %q is not registered", name).
			WithMeta("converter", name)
	}
	return fn, nil
}

// Names lists registered converters in lexical order
func (r *MemoryRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedNames(r.converters)
}
