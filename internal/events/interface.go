// Package events provides the synchronous notification primitives shared by
// records, collections and views. Listeners run on the caller's goroutine, in
// registration order, before Emit returns.
package events

// Releaser is implemented by anything that holds a registration which can be
// dropped individually.
type Releaser interface {
	Release()
}

// Compile-time verification that *Subscription implements Releaser
var _ Releaser = (*Subscription)(nil)
