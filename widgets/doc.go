// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (drawer chrome, stacks, row overlay compositor)
//
// Not allowed here:
// - mouse or key handling, drawer state transitions, or animation timing
package widgets
