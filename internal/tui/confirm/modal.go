package confirm

import "log/slog"

// Modal is a Confirmer for event loops that cannot block while a question is
// on screen. The first Confirm call records the question and answers "no", so
// the asking action leaves everything as it was. Once the user answers, a
// "yes" replays the action with the answer queued for its Confirm call.
//
// While a question is pending the owner routes all input to the prompt.
type Modal struct {
	pending string
	asking  bool
	action  func()
	queued  *bool
}

// NewModal creates a Modal with no pending question
func NewModal() *Modal {
	return &Modal{}
}

// Compile-time verification that *Modal implements Confirmer
var _ Confirmer = (*Modal)(nil)

func (m *Modal) Confirm(message string) bool {
	if m.queued != nil {
		answer := *m.queued
		m.queued = nil
		return answer
	}
	m.pending = message
	m.asking = true
	return false
}

// Run performs action. If action asked a question, it is kept so the
// answer can replay it.
func (m *Modal) Run(action func()) {
	action()
	if m.asking && m.action == nil {
		m.action = action
	}
}

// Pending reports whether a question awaits an answer, and its message
func (m *Modal) Pending() (string, bool) {
	return m.pending, m.asking
}

// Answer resolves the pending question. A "yes" replays the action that
// asked it; a "no" leaves things as they are.
func (m *Modal) Answer(yes bool) {
	if !m.asking {
		return
	}
	action, message := m.action, m.pending
	m.reset()

	if !yes || action == nil {
		return
	}

	m.queued = &yes
	action()
	if m.queued != nil {
		slog.Debug("confirmation replay did not ask again", "message", message)
		m.queued = nil
	}
	if m.asking {
		// the replay asked a different question; it needs its own answer
		m.action = action
	}
}

func (m *Modal) reset() {
	m.pending = ""
	m.asking = false
	m.action = nil
}
