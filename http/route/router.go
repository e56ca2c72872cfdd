package route

import (
	"fmt"

	"github.com/switchyard-web/switchyard"
)

// A Router owns the Routes for one resource, in declaration order.
// Selection is a linear scan; the first structural match wins,
// with no specificity scoring.
type Router struct {
	name   string
	routes []Route
}

// Name returns the canonical name of the resource the Router serves.
func (r *Router) Name() string { return r.name }

// Matches asserts whether any owned Route matches path.
func (r *Router) Matches(path string) bool {
	for _, rt := range r.routes {
		if rt.Matches(path) {
			return true
		}
	}

	return false
}

// Call hands req to the first Route matching its path,
// returning ErrNoMatch when none does.
func (r *Router) Call(req Request) ([]byte, error) {
	for _, rt := range r.routes {
		if rt.Matches(req.Path) {
			return rt.Call(req)
		}
	}

	return nil, fmt.Errorf("%w: %q in resource %q", switchyard.ErrNoMatch, req.Path, r.name)
}
