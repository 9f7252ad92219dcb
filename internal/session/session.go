// Package session tracks the single edit form that may be open at a time.
package session

import "log/slog"

// Session is an open form bound to one record
type Session interface {
	// Cancel asks the session to close as if the user cancelled it. It
	// reports whether the session is gone.
	Cancel() bool

	// Closed reports whether the session has already ended
	Closed() bool

	// Remove ends the session without asking
	Remove()
}

// Manager owns the currently open session
type Manager struct {
	current Session
}

// NewManager creates a manager with no open session
func NewManager() *Manager {
	return &Manager{}
}

// Default is the process-wide manager used when no other is supplied
var Default = NewManager()

// Init forgets any tracked session, leaving it open
func (m *Manager) Init() {
	m.current = nil
}

// Teardown ends the current session without confirmation
func (m *Manager) Teardown() {
	if m.current != nil && !m.current.Closed() {
		m.current.Remove()
	}
	m.current = nil
}

// Current returns the open session, or nil
func (m *Manager) Current() Session {
	if m.current != nil && m.current.Closed() {
		m.current = nil
	}
	return m.current
}

// CloseCurrent cancels the open session. It reports whether no session is
// open afterwards; false means the user chose to keep editing.
func (m *Manager) CloseCurrent() bool {
	current := m.Current()
	if current == nil {
		return true
	}
	if !current.Cancel() {
		slog.Debug("open session kept by user")
		return false
	}
	m.current = nil
	return true
}

// TryOpen closes the current session and, if that succeeds, opens the one
// built by factory. The factory is not called when the current session stays
// open.
func (m *Manager) TryOpen(factory func() Session) (Session, bool) {
	if !m.CloseCurrent() {
		return nil, false
	}
	s := factory()
	m.current = s
	return s, s != nil
}
