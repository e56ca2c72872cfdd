package route

import (
	"fmt"

	"github.com/switchyard-web/switchyard"
	"github.com/switchyard-web/switchyard/resource"
)

// paramsName is the synthetic argument name bound to the full raw parameter set.
const paramsName = "params"

// ResolveArgs assembles the ordered argument list for invoking h.
//
// A Variadic handler accepts anything and so receives nothing.
// Otherwise each declared parameter name resolves, in declaration order,
// against the path-derived arguments plus a synthetic "params" entry holding
// the complete raw parameter set; declaring a parameter named "params" hands
// the handler that whole set. Every declared parameter is required:
// an unresolvable name returns ErrMissingArgument.
func ResolveArgs(h resource.Handler, pathArgs map[string]int, params Params) ([]any, error) {
	if h.Variadic {
		return []any{}, nil
	}

	args := make([]any, 0, len(h.Params))
	for _, name := range h.Params {
		if name == paramsName {
			args = append(args, params)
			continue
		}

		val, ok := pathArgs[name]
		if !ok {
			return nil, fmt.Errorf("%w: handler %q requires %q", switchyard.ErrMissingArgument, h.Name, name)
		}

		args = append(args, val)
	}

	return args, nil
}
