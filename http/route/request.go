package route

// Params is the flat key-value set of request parameters,
// merged from the query string and body by the transport.
// Each key holds a single value.
type Params map[string]string

// A Request is the transport-agnostic unit of work the dispatch pipeline handles:
// a path and the raw parameters that accompanied it.
type Request struct {
	Path   string
	Params Params
}
