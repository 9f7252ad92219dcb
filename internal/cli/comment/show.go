package comment

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/remark/internal/cli"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/tui/components"
	"github.com/thenoetrevino/remark/internal/types"
)

const showWidth = 80

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one comment with its text rendered as markdown",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("plain", false, "Print the text without markdown rendering")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	plain, _ := cmd.Flags().GetBool("plain")
	formatter := cli.NewOutputFormatter(jsonOutput, false)
	formatter.Out = terminalOut(cmd.OutOrStdout())
	formatter.Err = cmd.ErrOrStderr()

	record, err := c.App.Repo().Get(cmd.Context(), types.CommentIDFromString(args[0]))
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("NOT_FOUND", err.Error(),
			"run 'remark list' to see saved ids"); fmtErr != nil {
			return fmtErr
		}
		return err
	}

	return formatter.Success(record.ID().String(), toJSON(record), func(w io.Writer) error {
		return printComment(w, record, !plain)
	})
}

func printComment(w io.Writer, c *models.Comment, markdown bool) error {
	header := fmt.Sprintf("%s  %s", color.New(color.Bold).Sprint(c.Author()), c.ID())
	if !c.CreatedAt().IsZero() {
		header += "  " + c.CreatedAt().Local().Format(dateLayout)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	text := c.Text()
	if markdown {
		text = components.RenderMarkdown(text, showWidth)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
