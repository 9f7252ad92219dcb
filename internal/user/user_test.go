package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAuthor(t *testing.T) {
	tests := []struct {
		name       string
		remembered string
		want       func(string) bool
	}{
		{
			name:       "remembered author wins",
			remembered: "Ann",
			want:       func(got string) bool { return got == "Ann" },
		},
		{
			name:       "falls back to system username",
			remembered: "",
			want:       func(got string) bool { return got == GetCurrentUsername() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultAuthor(tt.remembered)
			assert.True(t, tt.want(got), "DefaultAuthor(%q) = %q", tt.remembered, got)
		})
	}
}

func TestGetCurrentUsername_UsesEnvironmentFallback(t *testing.T) {
	t.Setenv("USER", "fallback-user")

	// user.Current normally succeeds; either source is acceptable
	assert.NotEmpty(t, GetCurrentUsername())
}
