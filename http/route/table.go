package route

import (
	"fmt"

	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/resource"
)

// Default handler names for the conventional route kinds.
const (
	DefaultShowHandler  = "find_by_id"
	DefaultNewHandler   = "initialize"
	DefaultIndexHandler = "all"
)

// A Table declaratively accumulates the Routes for one resource,
// producing its Router. The conventional registrations are:
//
//	show  -> /<name>/:id  handled by find_by_id
//	new   -> /<name>/new  handled by initialize
//	index -> /<name>      handled by all
//
// each optionally overriding the default handler name. Custom routes register
// through Handle with an explicit template, kind and handler name.
//
// Registration errors stick to the Table and surface from Router,
// so misdeclared resources fail at startup, not on first request.
type Table struct {
	desc     *resource.Descriptor
	renderer Renderer
	routes   []Route
	err      error
}

// NewTable begins route registration for the resource def describes.
func NewTable(def resource.Definition, renderer Renderer) *Table {
	t := &Table{renderer: renderer}
	t.desc, t.err = resource.NewDescriptor(def)
	if t.err == nil && renderer == nil {
		t.err = fmt.Errorf("%w: no renderer for resource %q", switchyard.ErrBadConfig, t.desc.Name())
	}

	return t
}

// Show registers the conventional show route, /<name>/:id.
func (t *Table) Show(handler ...string) *Table {
	if t.err != nil {
		return t
	}

	return t.add("/"+t.desc.Name()+"/:id", KindShow, nameOrDefault(handler, DefaultShowHandler))
}

// New registers the conventional new route, /<name>/new.
func (t *Table) New(handler ...string) *Table {
	if t.err != nil {
		return t
	}

	return t.add("/"+t.desc.Name()+"/new", KindNew, nameOrDefault(handler, DefaultNewHandler))
}

// Index registers the conventional index route, /<name>.
func (t *Table) Index(handler ...string) *Table {
	if t.err != nil {
		return t
	}

	return t.add("/"+t.desc.Name(), KindIndex, nameOrDefault(handler, DefaultIndexHandler))
}

// Handle registers a custom route with an explicit path template, Kind and
// handler name.
func (t *Table) Handle(template string, kind Kind, handler string) *Table {
	if t.err != nil {
		return t
	}

	if err := kind.Valid(); err != nil {
		t.err = fmt.Errorf("%w: bad kind for %q on resource %q", err, template, t.desc.Name())
		return t
	}

	return t.add(template, kind, handler)
}

// Router produces the resource's Router,
// or the first error registration ran into.
func (t *Table) Router() (*Router, error) {
	if t.err != nil {
		return nil, t.err
	}

	if len(t.routes) == 0 {
		return nil, fmt.Errorf("%w: no routes registered for resource %q", switchyard.ErrBadConfig, t.desc.Name())
	}

	return &Router{name: t.desc.Name(), routes: t.routes}, nil
}

func (t *Table) add(template string, kind Kind, handler string) *Table {
	h, err := t.desc.Handler(handler)
	if err != nil {
		t.err = err
		return t
	}

	t.routes = append(t.routes, NewRoute(template, h, kind, t.desc, t.renderer))
	return t
}

func nameOrDefault(overrides []string, def string) string {
	if len(overrides) > 0 && overrides[0] != "" {
		return overrides[0]
	}

	return def
}
