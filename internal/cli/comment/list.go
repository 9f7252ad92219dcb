package comment

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/remark/internal/cli"
	"github.com/thenoetrevino/remark/internal/models"
)

const (
	listTextWidth = 60
	listIDWidth   = 8
	dateLayout    = "2006-01-02 15:04"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved comments",
		RunE:  runList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	records := c.App.Comments.All()
	out := terminalOut(cmd.OutOrStdout())

	switch {
	case quietMode:
		for _, r := range records {
			if _, err := fmt.Fprintln(out, r.ID()); err != nil {
				return err
			}
		}
		return nil
	case jsonOutput:
		formatter := cli.NewOutputFormatter(true, false)
		formatter.Out = out
		data := make([]commentJSON, 0, len(records))
		for _, r := range records {
			data = append(data, toJSON(r))
		}
		return formatter.Success("", data, nil)
	}

	return PrintComments(out, records)
}

// PrintComments writes records as a table, one row per comment
func PrintComments(w io.Writer, records []models.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No comments yet")
		return err
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = listTextWidth
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Author"), bold.Sprint("Created"), bold.Sprint("Text"))

	for _, r := range records {
		created := ""
		if c, ok := r.(*models.Comment); ok && !c.CreatedAt().IsZero() {
			created = c.CreatedAt().Local().Format(dateLayout)
		}
		tbl.AddRow(
			shortID(r.ID().String()),
			color.CyanString(r.Get(models.FieldAuthor)),
			created,
			strings.Join(strings.Fields(r.Get(models.FieldText)), " "),
		)
	}

	_, err := fmt.Fprintln(w, tbl)
	return err
}

func shortID(id string) string {
	if len(id) > listIDWidth {
		return id[:listIDWidth]
	}
	return id
}

// terminalOut swaps stdout for the color-aware writer
func terminalOut(w io.Writer) io.Writer {
	if w == os.Stdout {
		return color.Output
	}
	return w
}
