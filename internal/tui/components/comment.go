package components

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/tui/theme"
)

// CommentCardProps configures RenderCommentCard
type CommentCardProps struct {
	Comment *models.Comment
	Width   int

	// Markdown renders the text through glamour instead of plain wrapping
	Markdown bool
}

// RenderCommentCard renders a single comment as a card
//
//	╭──────────────────────────────────────╮
//	│ Ann · Dec 28 18:54                   │
//	│ this is a new comment                │
//	╰──────────────────────────────────────╯
func RenderCommentCard(props CommentCardProps) string {
	textWidth := max(props.Width-cardChromeWidth, minTextWidth)

	header := renderCommentHeader(props.Comment)

	var body string
	if props.Markdown {
		body = RenderMarkdown(props.Comment.Text(), textWidth)
	} else {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)).
			Render(wordwrap.String(props.Comment.Text(), textWidth))
	}

	return CardStyle.
		Width(props.Width).
		Render(header + "\n" + body)
}

// renderCommentHeader renders "author · date"; the date is left out for
// comments that have not been stored yet
func renderCommentHeader(c *models.Comment) string {
	author := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Render(c.Author())

	if c.CreatedAt().IsZero() {
		return author
	}
	return author + SubtleStyle.Render(" · "+c.CreatedAt().Format(dateLayout))
}

// RenderCommentList renders every comment as a card, newest last. An empty
// list renders a placeholder.
func RenderCommentList(comments []models.Record, width int, markdown bool) string {
	if len(comments) == 0 {
		return SubtleStyle.Italic(true).Render("No comments yet")
	}

	cards := make([]string, 0, len(comments))
	for _, r := range comments {
		c, ok := r.(*models.Comment)
		if !ok {
			continue
		}
		cards = append(cards, RenderCommentCard(CommentCardProps{
			Comment:  c,
			Width:    width,
			Markdown: markdown,
		}))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
