// Package drawer contains the drag interpretation and transition decision
// engine for a bottom drawer.
//
// Allowed here:
// - pure position math (partial line, decision marks, corner radius)
// - the gesture state machine and the ending-position decision
// - transition orchestration against an abstract animator
// - outside-tap and drawer-tap gating
//
// Not allowed here:
// - rendering, terminal input decoding, or animation timing
// - persistence or configuration loading
package drawer
