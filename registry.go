package assetsrc

import (
	"fmt"
	"sort"
)

// ReaderFactory produces a Reader for a registered asset source. The
// source's configuration is bound when the factory is built, so a factory
// takes no arguments.
type ReaderFactory func() (Reader, error)

// Registry allows you to dynamically look up a registered asset source by
// its identifier. All sources provided in this module can be registered,
// and additional sources can be registered given a ReaderFactory.
//
// Register all sources before the first Lookup: the map is not guarded for
// concurrent mutation, while lookups and the readers they return are safe
// to use from many goroutines at once.
type Registry map[string]ReaderFactory

// NewRegistry returns a Registry ready for use.
func NewRegistry() Registry {
	return Registry(map[string]ReaderFactory{})
}

// Register registers the given factory for the source identified by id. If
// the id is already registered, it will be overridden.
func (r Registry) Register(id string, factory ReaderFactory) {
	r[id] = factory
}

// Lookup returns a Reader for the source identified by id. Use Register to
// register sources.
func (r Registry) Lookup(id string) (Reader, error) {
	factory, ok := r[id]
	if !ok {
		return nil, fmt.Errorf("no asset source registered for id %q", id)
	}

	return factory()
}

// Sources returns the registered source identifiers, sorted.
func (r Registry) Sources() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// WrappedReader returns a ReaderFactory that always returns the given
// Reader. Use it to register an already-constructed reader that lookups
// should share rather than rebuild.
func WrappedReader(reader Reader) ReaderFactory {
	return func() (Reader, error) {
		return reader, nil
	}
}
