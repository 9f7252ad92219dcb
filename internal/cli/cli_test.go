package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/remark/internal/config"
	"github.com/thenoetrevino/remark/internal/models"
)

func TestOptions_Register(t *testing.T) {
	var opts Options
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.Register(fs)

	require.NoError(t, fs.Parse([]string{"--config", "c.yaml", "--db", "x.db", "--debug"}))

	assert.Equal(t, Options{ConfigPath: "c.yaml", DBPath: "x.db", Debug: true}, opts)
}

func TestNewCLI(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	data := fmt.Sprintf("storage:\n  data_dir: %s\n  author_store: memory\n", dir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(data), 0o644))

	c, err := NewCLI(context.Background(), Options{
		ConfigPath: cfgPath,
		DBPath:     filepath.Join(dir, "override.db"),
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "override.db"), c.Config.Storage.DBPath)
	assert.FileExists(t, filepath.Join(dir, "override.db"))
	assert.FileExists(t, filepath.Join(dir, "logs", "remark.log"))
	require.NoError(t, c.Close())
}

func TestNewCLI_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ids:\n  strategy: dice\n"), 0o644))

	_, err := NewCLI(context.Background(), Options{ConfigPath: cfgPath})

	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestContextRoundTrip(t *testing.T) {
	_, err := GetCLIFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoCLI)

	c := &CLI{}
	got, err := GetCLIFromContext(WithCLI(context.Background(), c))
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "config", err: fmt.Errorf("load: %w", config.ErrInvalidConfig), want: ExitUsage},
		{name: "not found", err: models.ErrCommentNotFound, want: ExitNotFound},
		{name: "validation", err: ErrValidation, want: ExitValidation},
		{name: "other", err: io.EOF, want: ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestOutputFormatter(t *testing.T) {
	human := func(w io.Writer) error {
		_, err := fmt.Fprint(w, "pretty")
		return err
	}

	tests := []struct {
		name  string
		json  bool
		quiet bool
		want  string
	}{
		{name: "human", want: "pretty"},
		{name: "quiet", quiet: true, want: "c1\n"},
		{name: "json", json: true, want: `{"data":{"id":"c1"},"success":true}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			f := &OutputFormatter{JSON: tt.json, Quiet: tt.quiet, Out: &out, Err: io.Discard}

			require.NoError(t, f.Success("c1", map[string]string{"id": "c1"}, human))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestOutputFormatter_Error(t *testing.T) {
	var stderr bytes.Buffer
	f := &OutputFormatter{Out: io.Discard, Err: &stderr}

	require.NoError(t, f.ErrorWithSuggestion("X", "broke", "try again"))

	assert.Equal(t, "Error: broke\nSuggestion: try again\n", stderr.String())
}
