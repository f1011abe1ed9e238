// Package game implements a spelling quest session.
//
// The session is a small state machine with three phases: Home, Playing and
// Results. Transition is a pure function from a State and an Event to the
// next State plus a list of Effects (fetch words, schedule a timer, speak a
// word, show a notice). Machine owns the current State, runs the effects and
// feeds their results back as events.
//
// Timers and remote results carry a Token. A Token from an older session or
// a superseded timer no longer matches the State and the event is ignored,
// so a restart never sees a late word list or a late auto-advance.
package game
