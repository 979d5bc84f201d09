package client

import "sync/atomic"

// inFlightFlag guards a submit operation against rapid double-submits. The
// UI contract keeps a single user from two conflicting transitions in one
// tick, but nothing stops a second submit while the first awaits the
// backend; acquire fails in that window.
type inFlightFlag struct {
	busy atomic.Bool
}

func (f *inFlightFlag) acquire() bool {
	return f.busy.CompareAndSwap(false, true)
}

func (f *inFlightFlag) release() {
	f.busy.Store(false)
}
