// Package debug holds developer tracing switches for the mcnp command,
// read once from the environment:
//
//	MCNP_DEBUG_DISPATCH   log every card dispatch decision
//	MCNP_DEBUG_DECK       dump each parsed deck to stderr
//
// Library packages never import it.
package debug
