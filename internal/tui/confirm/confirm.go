// Package confirm provides the yes/no capability used before discarding
// unsaved edits.
package confirm

// Confirmer asks the user a yes/no question and reports the answer
type Confirmer interface {
	Confirm(message string) bool
}

// Func adapts a plain function to Confirmer
type Func func(message string) bool

func (f Func) Confirm(message string) bool {
	return f(message)
}

// Always answers every question with the same value
type Always bool

func (a Always) Confirm(string) bool {
	return bool(a)
}
