package resource

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/switchyard-web/switchyard"
)

// A Descriptor wraps a Definition with the conventions derived from it.
// A Descriptor is built once per resource at route-table construction
// and is read-only thereafter.
type Descriptor struct {
	def      Definition
	name     string
	handlers map[string]Handler
}

// NewDescriptor constructs a *Descriptor for the given Definition,
// failing fast when the Definition does not uphold its contract:
// a nameable type and at least one Handler with a name and a function.
func NewDescriptor(def Definition) (*Descriptor, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil resource definition", switchyard.ErrBadConvention)
	}

	name := definitionName(def)
	if name == "" {
		return nil, fmt.Errorf("%w: resource definition %T has no name", switchyard.ErrBadConvention, def)
	}

	hs := def.Handlers()
	if len(hs) == 0 {
		return nil, fmt.Errorf("%w: resource %q exposes no handlers", switchyard.ErrBadConvention, name)
	}

	handlers := make(map[string]Handler, len(hs))
	for _, h := range hs {
		if h.Name == "" || h.Fn == nil {
			return nil, fmt.Errorf("%w: resource %q has a malformed handler", switchyard.ErrBadConvention, name)
		}

		handlers[h.Name] = h
	}

	return &Descriptor{def: def, name: name, handlers: handlers}, nil
}

// Name returns the canonical lowercase, underscored resource name,
// e.g., "BlogPost" becomes "blog_post".
func (d *Descriptor) Name() string { return d.name }

// Handler retrieves the named Handler,
// returning ErrBadConvention when the resource does not expose it.
func (d *Descriptor) Handler(name string) (Handler, error) {
	h, ok := d.handlers[name]
	if !ok {
		return Handler{}, fmt.Errorf("%w: resource %q has no handler %q", switchyard.ErrBadConvention, d.name, name)
	}

	return h, nil
}

// PresentOne wraps a single record in the resource's singular presenter.
func (d *Descriptor) PresentOne(record any) any { return d.def.PresentOne(record) }

// PresentMany wraps a collection in the resource's plural presenter.
func (d *Descriptor) PresentMany(records any) any { return d.def.PresentMany(records) }

// definitionName derives the resource name from the Definition's type name,
// dereferencing any levels of indirection first.
func definitionName(def Definition) string {
	t := reflect.TypeOf(def)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return snakeCase(t.Name())
}

// snakeCase lowercases s, inserting "_" before each internal run of uppercase letters.
// Applying snakeCase to its own output changes nothing.
func snakeCase(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i, r := range rs {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := !unicode.IsUpper(rs[i-1])
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
