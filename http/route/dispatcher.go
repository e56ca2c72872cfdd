package route

import (
	"errors"
	"fmt"

	"github.com/switchyard-web/switchyard"
)

// A Dispatcher owns one Router per declared resource, in registration order.
// It is the top of the dispatch pipeline: the transport hands it every request.
type Dispatcher struct {
	routers []*Router
}

// NewDispatcher constructs a Dispatcher over the given Routers.
func NewDispatcher(routers ...*Router) *Dispatcher {
	return &Dispatcher{routers: routers}
}

// Register appends a Router to the chain. Registration order is significant:
// the first Router matching a path handles it.
func (d *Dispatcher) Register(r *Router) { d.routers = append(d.routers, r) }

// Call tries each Router in registration order.
// ErrNoMatch falls through to the next Router, except from the last,
// whose failure propagates to the caller.
// The first Router to match short-circuits the chain.
func (d *Dispatcher) Call(req Request) ([]byte, error) {
	for i, r := range d.routers {
		out, err := r.Call(req)
		if errors.Is(err, switchyard.ErrNoMatch) && i < len(d.routers)-1 {
			continue
		}

		return out, err
	}

	return nil, fmt.Errorf("%w: %q", switchyard.ErrNoMatch, req.Path)
}
