package eseries

// Note: MatcherFactory cannot be implemented outside this package because
// Register() uses the unexported coreMatcher type. Use DefaultFactory
// directly in tests.

import (
	"fmt"
	"sort"
	"sync"
)

// MatcherFactory creates and caches Matcher instances by name, enabling
// dependency injection and registration of custom strategies.
type MatcherFactory interface {
	// Create creates a fresh Matcher instance by name, without caching.
	Create(name string) (Matcher, error)

	// Get returns a cached Matcher instance by name, creating it on first use.
	Get(name string) (Matcher, error)

	// List returns a sorted list of registered strategy names.
	List() []string

	// Register adds a new strategy to the factory, replacing any existing
	// strategy with the same name.
	Register(name string, creator func() coreMatcher) error
}

// DefaultFactory is the default MatcherFactory implementation. It keeps a
// thread-safe registry of strategy creators and caches Matcher instances.
type DefaultFactory struct {
	mu       sync.RWMutex
	creators map[string]func() coreMatcher
	matchers map[string]Matcher
}

// NewDefaultFactory creates a DefaultFactory with the standard matching
// strategies pre-registered:
//   - "nearest": NearestValueMatcher (per-value closest entry, worst-case error)
//   - "ratio": RatioPairMatcher (first entry pair within the error bound)
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators: make(map[string]func() coreMatcher),
		matchers: make(map[string]Matcher),
	}

	_ = f.Register("nearest", func() coreMatcher { return &NearestValueMatcher{} })
	_ = f.Register("ratio", func() coreMatcher { return &RatioPairMatcher{} })

	return f
}

// Register adds a strategy. The creator is invoked lazily on first request.
// Any cached instance under the same name is discarded.
func (f *DefaultFactory) Register(name string, creator func() coreMatcher) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.matchers, name)
	return nil
}

// Create builds a fresh Matcher by name, bypassing the cache.
func (f *DefaultFactory) Create(name string) (Matcher, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown matcher: %s", name)
	}
	return NewMatcher(creator()), nil
}

// Get returns the cached Matcher for a name, creating and caching it on
// first use. This is the preferred accessor for most callers.
func (f *DefaultFactory) Get(name string) (Matcher, error) {
	f.mu.RLock()
	if m, exists := f.matchers[name]; exists {
		f.mu.RUnlock()
		return m, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring the write lock
	if m, exists := f.matchers[name]; exists {
		return m, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown matcher: %s", name)
	}

	m := NewMatcher(creator())
	f.matchers[name] = m
	return m, nil
}

// List returns all registered strategy names, sorted alphabetically.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks whether a strategy with the given name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

// MustGet is like Get but panics if the strategy is not registered. Useful
// in initialization code where a missing strategy is a programming error.
func (f *DefaultFactory) MustGet(name string) Matcher {
	m, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("eseries: required matcher not found: %s", name))
	}
	return m
}

// globalFactory is the default global factory instance.
var globalFactory = NewDefaultFactory()

// GlobalFactory returns the global factory instance, a convenience for
// applications that don't need multiple factories.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}
