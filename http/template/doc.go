/*

Package template renders the HTML template conventionally bound to a route.

Templates live under one root directory, one subdirectory per resource,
one file per route kind: tmpl/blog_post/show.tmpl renders the show route
of the blog_post resource. An [*Engine] parses a template the first time
a route renders through it and caches the result; the presenter handed to
Render is the template's one bound value.

*/
package template
