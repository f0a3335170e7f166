package app

import (
	"fmt"
	"regexp"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router dispatches a transaction to the handler registered for the path of
// its message, in the manner of http.ServeMux.
type Router struct {
	routes map[string]weave.Handler
}

var (
	_ weave.Registry = (*Router)(nil)
	_ weave.Handler  = (*Router)(nil)
)

func NewRouter() *Router {
	return &Router{routes: make(map[string]weave.Handler)}
}

// Handle registers h for path. It panics on an invalid or already
// registered path.
func (r *Router) Handle(path string, h weave.Handler) {
	switch _, taken := r.routes[path]; {
	case !isPath(path):
		panic(fmt.Sprintf("invalid path: %q", path))
	case taken:
		panic(fmt.Sprintf("path %q already registered", path))
	}
	r.routes[path] = h
}

func (r *Router) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

func (r *Router) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func (r *Router) route(tx weave.Tx) (weave.Handler, error) {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return nil, errors.Wrap(err, "tx message")
	case msg == nil:
		return nil, errors.Wrap(errors.ErrState, "nil message")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", msg.Path())
	}
	return h, nil
}
