package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/remark/internal/cli"
	"github.com/thenoetrevino/remark/internal/cli/comment"
	"github.com/thenoetrevino/remark/internal/launcher"
)

// NewRootCmd builds the remark command tree. Every subcommand finds the
// shared CLI in its context.
func NewRootCmd() *cobra.Command {
	var opts cli.Options

	rootCmd := &cobra.Command{
		Use:   "remark",
		Short: "Remark - comments from your terminal",
		Long: `Remark keeps a list of short comments.

Run it without a subcommand to open the comment screen.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := cli.NewCLI(cmd.Context(), opts)
			if err != nil {
				return err
			}
			cmd.SetContext(cli.WithCLI(cmd.Context(), c))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			c, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return nil
			}
			return c.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return launcher.Launch(cmd.Context(), c)
		},
	}

	opts.Register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(comment.AddCmd())
	rootCmd.AddCommand(comment.ListCmd())
	rootCmd.AddCommand(comment.ShowCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
