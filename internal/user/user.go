// Package user resolves the name offered as author when nothing better is
// remembered.
package user

import (
	"os"
	"os/user"
)

// GetCurrentUsername returns the current system username.
// It tries user.Current, then the USER environment variable, and
// returns "" when neither is available.
func GetCurrentUsername() string {
	currentUser, err := user.Current()
	if err == nil && currentUser.Username != "" {
		return currentUser.Username
	}
	return os.Getenv("USER")
}

// DefaultAuthor returns remembered when it is set, otherwise the system
// username
func DefaultAuthor(remembered string) string {
	if remembered != "" {
		return remembered
	}
	return GetCurrentUsername()
}
