package covault

import (
	"fmt"
)

// Model groups a key value pair as returned by queries.
type Model struct {
	Key   []byte
	Value []byte
}

const (
	// KeyQueryMod means to query for exact match (key)
	KeyQueryMod = ""
	// PrefixQueryMod means to query for anything with this prefix
	PrefixQueryMod = "prefix"
)

// QueryHandler is anything that can process read-only requests against
// the state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRouter allows us to register many query handlers
// to be routed by path.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter with no routes.
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 10),
	}
}

// Register adds a new Handler for the given path. Panics on duplicate.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path, or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}
