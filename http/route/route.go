package route

import (
	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/resource"
)

// A Kind classifies a Route, selecting both the presenter wrapping the
// handler's result and the template file the presenter renders through.
// Beyond the conventional three, any label may serve as a custom Kind.
type Kind string

const (
	KindShow  Kind = "show"
	KindNew   Kind = "new"
	KindIndex Kind = "index"
)

func (k Kind) String() string { return string(k) }

func (k Kind) Valid() error {
	if k == "" {
		return switchyard.ErrNotValid
	}

	return nil
}

// PresentsMany asserts whether the Kind wraps results in the plural presenter.
// Only index does; show, new and custom Kinds present a single record.
func (k Kind) PresentsMany() bool { return k == KindIndex }

// A Renderer renders the template conventionally located by
// (resource name, route kind) with the presenter as its one bound value.
type Renderer interface {
	Render(resourceName, kind string, presenter any) ([]byte, error)
}

// A Route binds one path template to one handler and one rendering target
// for a resource. A Route is immutable after construction and keeps no state
// between calls.
type Route struct {
	matcher  Matcher
	handler  resource.Handler
	kind     Kind
	desc     *resource.Descriptor
	renderer Renderer
}

// NewRoute constructs a Route matching the path template.
func NewRoute(template string, h resource.Handler, kind Kind, desc *resource.Descriptor, renderer Renderer) Route {
	return Route{
		matcher:  NewMatcher(template),
		handler:  h,
		kind:     kind,
		desc:     desc,
		renderer: renderer,
	}
}

// Matches asserts whether the Route's template structurally matches path.
func (rt Route) Matches(path string) bool { return rt.matcher.Matches(path) }

// Call handles req: it resolves the handler's arguments from the path and raw
// parameters, invokes the handler, wraps the result in the Kind's presenter
// and renders it. Errors raised by the handler propagate unmodified.
func (rt Route) Call(req Request) ([]byte, error) {
	pathArgs, err := rt.matcher.Args(req.Path)
	if err != nil {
		return nil, err
	}

	args, err := ResolveArgs(rt.handler, pathArgs, req.Params)
	if err != nil {
		return nil, err
	}

	val, err := rt.handler.Fn(args)
	if err != nil {
		return nil, err
	}

	var presenter any
	if rt.kind.PresentsMany() {
		presenter = rt.desc.PresentMany(val)
	} else {
		presenter = rt.desc.PresentOne(val)
	}

	return rt.renderer.Render(rt.desc.Name(), rt.kind.String(), presenter)
}
