package switchyard

// Enumerable is the interface implemented by types whose values are drawn
// from a fixed, constant set.
type Enumerable interface {
	String() string
	Valid() error
}
