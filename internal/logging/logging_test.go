package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "info level", debug: false, wantDebug: false},
		{name: "debug level", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "logs")

			closer, err := Init(dir, tt.debug)
			require.NoError(t, err)

			slog.Debug("debug line")
			slog.Info("info line")
			require.NoError(t, closer.Close())
			Discard()

			data, err := os.ReadFile(filepath.Join(dir, FileName))
			require.NoError(t, err)
			assert.Contains(t, string(data), "info line")
			if tt.wantDebug {
				assert.Contains(t, string(data), "debug line")
			} else {
				assert.NotContains(t, string(data), "debug line")
			}
		})
	}
}
