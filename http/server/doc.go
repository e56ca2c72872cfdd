/*

Package server is the HTTP transport collaborator of the dispatch pipeline.

The pipeline itself knows nothing of net/http. A [*Server] bridges the two:
it owns a [mux.Router] that serves static assets directly and funnels every
other request - whatever its path or method - into a [route.Dispatcher],
first flattening the request into the pipeline's transport-agnostic shape.
Errors crossing back over the bridge become HTTP statuses here,
since the pipeline provides no default error page of its own.

*/
package server
