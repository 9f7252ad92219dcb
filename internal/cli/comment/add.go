package comment

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"charm.land/huh/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/remark/internal/cli"
	"github.com/thenoetrevino/remark/internal/collection"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/session"
	"github.com/thenoetrevino/remark/internal/tui/editform"
	"github.com/thenoetrevino/remark/internal/tui/huhforms"
	"github.com/thenoetrevino/remark/internal/tui/spawn"
	"github.com/thenoetrevino/remark/internal/user"
)

// ErrDiscarded is returned when the user abandons the comment
var ErrDiscarded = errors.New("comment discarded")

// Prompter collects author and text from the user, editing the values in
// place. Returning huh.ErrUserAborted asks to cancel the comment.
type Prompter interface {
	Prompt(author, text *string) error
}

// huhPrompter prompts with a huh form on the terminal
type huhPrompter struct {
	theme huh.Theme
}

func (p huhPrompter) Prompt(author, text *string) error {
	form := huhforms.CreateCommentForm(author, text)
	if p.theme != nil {
		form = form.WithTheme(p.theme)
	}
	return form.Run()
}

// AddSession is everything a line-mode comment needs
type AddSession struct {
	Comments    collection.Adder
	FormOptions []editform.Option

	// Prompter is nil for non-interactive use; the given values are then
	// submitted once
	Prompter Prompter

	// Errors receives validation messages between prompts
	Errors io.Writer
}

// AddComment runs one comment form to completion without a screen. Author
// defaults to the remembered author, then to the system user.
func AddComment(s AddSession, author, text string) (models.Record, error) {
	button, err := spawn.New(s.Comments,
		spawn.WithSessions(session.NewManager()),
		spawn.WithFormOptions(s.FormOptions...),
	)
	if err != nil {
		return nil, err
	}
	button.Activate()
	form := button.Form()

	var committed models.Record
	form.OnSuccess(func(r models.Record) { committed = r })

	if author == "" {
		author = user.DefaultAuthor(form.AuthorValue())
	}

	for {
		if s.Prompter != nil {
			err := s.Prompter.Prompt(&author, &text)
			if errors.Is(err, huh.ErrUserAborted) {
				form.SetAuthorValue(author)
				form.SetTextValue(text)
				if form.Cancel() {
					return nil, ErrDiscarded
				}
				continue
			}
			if err != nil {
				form.Remove()
				return nil, fmt.Errorf("prompt failed: %w", err)
			}
		}

		form.SetAuthorValue(author)
		form.SetTextValue(text)
		if form.Submit() {
			return committed, nil
		}

		if s.Prompter == nil {
			form.Remove()
			return nil, fmt.Errorf("%w: %v", cli.ErrValidation, form.Errors())
		}
		printErrors(s.Errors, form.Errors())
	}
}

func printErrors(w io.Writer, msgs []string) {
	if w == nil {
		return
	}
	red := color.New(color.FgRed)
	for _, msg := range msgs {
		if _, err := red.Fprintln(w, "• "+msg); err != nil {
			slog.Debug("failed to print validation error", "error", err)
		}
	}
}

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a comment",
		Long: `Add a comment from the terminal.

Without --text the author and text are asked for interactively.

Examples:
  # Interactive
  remark add

  # Non-interactive, print only the new id
  remark add --author=Ann --text="Looks good" --quiet
`,
		RunE: runAdd,
	}

	cmd.Flags().String("author", "", "Comment author (defaults to the last author)")
	cmd.Flags().String("text", "", "Comment text; skips the prompt")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := cli.NewOutputFormatter(jsonOutput, quietMode)
	formatter.Out = cmd.OutOrStdout()
	formatter.Err = cmd.ErrOrStderr()

	author, _ := cmd.Flags().GetString("author")
	text, _ := cmd.Flags().GetString("text")

	theme := huhforms.CreateRemarkTheme(c.Config.ColorScheme)
	s := AddSession{
		Comments: c.App.Comments,
		FormOptions: []editform.Option{
			editform.WithIDGenerator(c.App.IDs),
			editform.WithLastAuthor(c.App.Authors),
			editform.WithConfirmer(huhforms.Confirmer{Theme: theme}),
		},
		Errors: cmd.ErrOrStderr(),
	}
	if !cmd.Flags().Changed("text") {
		s.Prompter = huhPrompter{theme: theme}
	}

	record, err := AddComment(s, author, text)
	if errors.Is(err, ErrDiscarded) {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "Comment discarded")
		return err
	}
	if err != nil {
		if fmtErr := formatter.Error("ADD_FAILED", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	return formatter.Success(record.ID().String(), toJSON(record), func(w io.Writer) error {
		_, err := color.New(color.FgGreen).Fprintf(w, "✓ Saved comment %s by %s\n",
			record.ID(), record.Get(models.FieldAuthor))
		return err
	})
}
