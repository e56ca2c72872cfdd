/*

Package resource defines the contract a domain entity satisfies
in order to be routed to and rendered by switchyard.

A resource is declared once, at startup, as a [Definition]:
the set of named [Handler] descriptors its record type exposes
and the pair of presenter constructors templates consume.
A [Descriptor] wraps a Definition with the conventions derived from it,
notably the lowercase, underscored resource name
used for both paths and template locations.

*/
package resource
