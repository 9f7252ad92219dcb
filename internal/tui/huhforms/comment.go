package huhforms

import "charm.land/huh/v2"

// CreateCommentForm creates a huh form collecting a comment's author and text.
// Values are written through the pointers; validation is left to the caller
// so that line mode reports the same errors as the overlay form.
func CreateCommentForm(author, text *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("author").
			Title("Author").
			Placeholder("Your name").
			Value(author),
		huh.NewText().
			Key("text").
			Title("Comment").
			Placeholder("Enter comment text...").
			Value(text).
			CharLimit(1000),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CommentKeyMap())
}

// CreateConfirmForm creates a single yes/no question
func CreateConfirmForm(title string, answer *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(answer),
	))
}
