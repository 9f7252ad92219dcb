package events

// Subscription is the handle returned for every listener registration.
// Releasing it removes exactly that listener; releasing twice is a no-op.
type Subscription struct {
	release func()
}

// Release removes the listener this subscription was created for.
func (s *Subscription) Release() {
	if s == nil || s.release == nil {
		return
	}
	release := s.release
	s.release = nil
	release()
}

// Active reports whether the subscription has not been released yet.
func (s *Subscription) Active() bool {
	return s != nil && s.release != nil
}

type listener[T any] struct {
	fn      func(T)
	removed bool
}

// Signal is an ordered set of listeners for values of type T.
// The zero value is ready to use. Signals are not safe for concurrent use.
type Signal[T any] struct {
	listeners []*listener[T]
}

// Subscribe registers fn and returns its handle.
func (s *Signal[T]) Subscribe(fn func(T)) *Subscription {
	l := &listener[T]{fn: fn}
	s.listeners = append(s.listeners, l)
	return &Subscription{release: func() { s.remove(l) }}
}

// Emit calls every listener registered at the time of the call.
// Listeners released during delivery are skipped; listeners added during
// delivery wait for the next Emit.
func (s *Signal[T]) Emit(v T) {
	snapshot := make([]*listener[T], len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.fn(v)
	}
}

// Len returns the number of registered listeners.
func (s *Signal[T]) Len() int {
	return len(s.listeners)
}

// Reset drops every listener. Outstanding handles become no-ops.
func (s *Signal[T]) Reset() {
	for _, l := range s.listeners {
		l.removed = true
	}
	s.listeners = nil
}

func (s *Signal[T]) remove(target *listener[T]) {
	target.removed = true
	for i, l := range s.listeners {
		if l == target {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}
