package partition

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// DefaultName is the registry name of the built-in HTML partitioner.
const DefaultName = "html"

// Factory creates a partitioner. Factories report a missing dependency by
// returning an error.
type Factory func() (Partitioner, error)

// ErrUnavailable is returned by Lookup for unknown or unusable partitioners.
var ErrUnavailable = errors.New("partitioner not available")

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

func init() {
	Register(DefaultName, func() (Partitioner, error) {
		return NewHTML(Config{}), nil
	})
}

// Register adds or replaces a partitioner factory.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Lookup creates the partitioner registered under name.
func Lookup(name string) (Partitioner, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnavailable, name, Available())
	}

	p, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnavailable, name, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnavailable, name)
	}
	return p, nil
}

// Available returns the registered partitioner names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
