/*

Package route matches request paths to resource handlers and renders their results.

The pipeline runs leaf to root. A [Matcher] compiles a path template of literal
and named (":id") segments and extracts named segments as integer arguments.
[ResolveArgs] reconciles those arguments - plus the raw request parameters -
against a handler's declared parameter names, producing the ordered argument
list the handler is invoked with. A [Route] binds one template to one handler
and one rendering target; a [Router] owns the Routes for a single resource,
selecting the first structural match; a [Dispatcher] owns the Routers for the
whole app, trying each in registration order and falling through on
[switchyard.ErrNoMatch].

Routes are declared through a [Table], which registers the conventional
show/new/index routes for a resource, or custom ones, and produces the
resource's Router.

Everything in this package is built once at startup and read-only afterwards,
so concurrent requests need no locking.

*/
package route
