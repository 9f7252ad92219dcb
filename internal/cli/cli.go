// Package cli holds what every remark subcommand shares: global flags, the
// application container and output formatting.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/thenoetrevino/remark/internal/app"
	"github.com/thenoetrevino/remark/internal/config"
	"github.com/thenoetrevino/remark/internal/logging"
)

// ErrNoCLI is returned when a command runs without an initialized CLI
var ErrNoCLI = errors.New("cli not initialized")

// Options are the global flags
type Options struct {
	ConfigPath string
	DBPath     string
	Debug      bool
}

// Register adds the global flags to fs
func (o *Options) Register(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/remark/config.yaml)")
	fs.StringVar(&o.DBPath, "db", "", "database file (overrides storage.db_path)")
	fs.BoolVar(&o.Debug, "debug", false, "write debug records to the log file")
}

// LoadConfig reads the config file and applies flag overrides
func (o Options) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if o.DBPath != "" {
		cfg.Storage.DBPath = o.DBPath
	}
	return cfg, nil
}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config

	logFile io.Closer
}

// NewCLI loads the configuration, starts file logging and opens the
// application container
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return nil, err
	}

	c := &CLI{Config: cfg}
	c.startLogging(opts.Debug)

	application, err := app.New(ctx, cfg)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.App = application
	return c, nil
}

// startLogging writes logs under the data directory. Logging problems never
// stop a command.
func (c *CLI) startLogging(debug bool) {
	dir, err := c.Config.ResolvedDataDir()
	if err != nil {
		logging.Discard()
		return
	}

	closer, err := logging.Init(filepath.Join(dir, "logs"), debug)
	if err != nil {
		logging.Discard()
		return
	}
	c.logFile = closer
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var errs []error
	if c.App != nil {
		if err := c.App.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close app: %w", err))
		}
	}
	if c.logFile != nil {
		slog.Debug("closing log")
		logging.Discard()
		if err := c.logFile.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type cliKey struct{}

// WithCLI stores c in ctx for subcommands
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
