package app

import (
	"fmt"
	"regexp"

	"github.com/covault/covault"
	"github.com/covault/covault/errors"
)

// Router allows us to register many handlers with different
// paths and then direct each message to the registered handler.
type Router struct {
	routes map[string]covault.Handler
}

var _ covault.Registry = (*Router)(nil)
var _ covault.Handler = (*Router)(nil)

// pathPattern describes an allowed format of the registration path.
var pathPattern = regexp.MustCompile(`^[a-z0-9_/]{4,32}$`)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]covault.Handler),
	}
}

// Handle adds a new handler for the given path. This function panics if a
// handler for the given path is already registered or if the path is invalid.
func (r *Router) Handle(path string, h covault.Handler) {
	if !pathPattern.MatchString(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path.
// If no path is found, returns a noSuchPathHandler.
func (r *Router) Handler(path string) covault.Handler {
	h, ok := r.routes[path]
	if !ok {
		return noSuchPathHandler{path}
	}
	return h
}

// Check dispatches to the proper handler based on path.
func (r *Router) Check(ctx covault.Context, store covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return covault.CheckResult{}, errors.Wrap(err, "cannot load msg")
	}
	h := r.Handler(msg.Path())
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path.
func (r *Router) Deliver(ctx covault.Context, store covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return covault.DeliverResult{}, errors.Wrap(err, "cannot load msg")
	}
	h := r.Handler(msg.Path())
	return h.Deliver(ctx, store, tx)
}

type noSuchPathHandler struct {
	path string
}

var _ covault.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(covault.Context, covault.KVStore, covault.Tx) (covault.CheckResult, error) {
	return covault.CheckResult{}, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h noSuchPathHandler) Deliver(covault.Context, covault.KVStore, covault.Tx) (covault.DeliverResult, error) {
	return covault.DeliverResult{}, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
