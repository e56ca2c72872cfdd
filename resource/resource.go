package resource

// A Handler describes one callable a resource's record type exposes to routing.
//
// Params lists the handler's declared parameter names in declaration order.
// Argument resolution binds each name to a path or request parameter,
// so Params is the single source of truth for what a Handler requires.
// A Handler standing in for a constructor declares the constructor's
// parameter names, not its own.
//
// Variadic marks a Handler that accepts arbitrary arguments;
// such a Handler is always invoked with none.
type Handler struct {
	Name     string
	Params   []string
	Variadic bool
	Fn       func(args []any) (any, error)
}

// A Definition declares everything switchyard needs to route a resource:
// the record type's handlers and the two presenter constructors.
//
// PresentOne wraps a single record for rendering; PresentMany wraps a
// collection. Both return the value templates are bound to.
type Definition interface {
	Handlers() []Handler
	PresentOne(record any) any
	PresentMany(records any) any
}
