package comment

import (
	"bytes"
	"errors"
	"testing"

	"charm.land/huh/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/remark/internal/cli"
	"github.com/thenoetrevino/remark/internal/collection"
	"github.com/thenoetrevino/remark/internal/ids"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/storage"
	"github.com/thenoetrevino/remark/internal/tui/confirm"
	"github.com/thenoetrevino/remark/internal/tui/editform"
)

type step struct {
	author, text string
	err          error
}

// scriptedPrompter plays back one step per prompt
type scriptedPrompter struct {
	steps []step
	calls int
	seen  []string
}

func (p *scriptedPrompter) Prompt(author, text *string) error {
	p.seen = append(p.seen, *author)
	if p.calls >= len(p.steps) {
		return errors.New("unexpected prompt")
	}
	s := p.steps[p.calls]
	p.calls++
	*author, *text = s.author, s.text
	return s.err
}

func newSession(c confirm.Confirmer, p Prompter) (AddSession, *collection.Collection, *bytes.Buffer) {
	comments := collection.New()
	var errs bytes.Buffer
	return AddSession{
		Comments: comments,
		FormOptions: []editform.Option{
			editform.WithIDGenerator(&ids.Sequence{}),
			editform.WithConfirmer(c),
			editform.WithLastAuthor(storage.NewLastAuthor(storage.NewMemory())),
		},
		Prompter: p,
		Errors:   &errs,
	}, comments, &errs
}

func TestAddComment_NonInteractive(t *testing.T) {
	s, comments, _ := newSession(confirm.Always(false), nil)

	record, err := AddComment(s, "Ann", "Hi")

	require.NoError(t, err)
	assert.Equal(t, "1", record.ID().String())
	assert.Equal(t, "Ann", record.Get(models.FieldAuthor))
	assert.Equal(t, 1, comments.Len())
}

func TestAddComment_NonInteractiveInvalid(t *testing.T) {
	s, comments, _ := newSession(confirm.Func(func(string) bool {
		t.Fatal("validation failure must not ask to discard")
		return false
	}), nil)

	_, err := AddComment(s, "Ann", "")

	require.ErrorIs(t, err, cli.ErrValidation)
	assert.Contains(t, err.Error(), editform.MsgTextEmpty)
	assert.Equal(t, 0, comments.Len())
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}

func TestAddComment_RepromptsUntilValid(t *testing.T) {
	p := &scriptedPrompter{steps: []step{
		{author: "", text: "Hi"},
		{author: "Ann", text: "Hi"},
	}}
	s, comments, errs := newSession(confirm.Always(false), p)

	record, err := AddComment(s, "", "")

	require.NoError(t, err)
	assert.Equal(t, 2, p.calls)
	assert.Equal(t, "Ann", record.Get(models.FieldAuthor))
	assert.Equal(t, 1, comments.Len())
	assert.Contains(t, errs.String(), editform.MsgAuthorEmpty)
	assert.NotContains(t, errs.String(), editform.MsgTextEmpty)
}

func TestAddComment_Abort(t *testing.T) {
	tests := []struct {
		name      string
		steps     []step
		answer    bool
		wantAsked bool
		wantErr   error
		wantLen   int
	}{
		{
			name:    "clean form discards without asking",
			steps:   []step{{err: huh.ErrUserAborted}},
			wantErr: ErrDiscarded,
		},
		{
			name:      "dirty form discards when confirmed",
			steps:     []step{{author: "Ann", text: "draft", err: huh.ErrUserAborted}},
			answer:    true,
			wantAsked: true,
			wantErr:   ErrDiscarded,
		},
		{
			name: "declined discard keeps editing",
			steps: []step{
				{author: "Ann", text: "draft", err: huh.ErrUserAborted},
				{author: "Ann", text: "final"},
			},
			wantAsked: true,
			wantLen:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asked := false
			c := confirm.Func(func(msg string) bool {
				asked = true
				assert.Equal(t, editform.DiscardPrompt, msg)
				return tt.answer
			})
			s, comments, _ := newSession(c, &scriptedPrompter{steps: tt.steps})

			_, err := AddComment(s, "", "")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAsked, asked)
			assert.Equal(t, tt.wantLen, comments.Len())
		})
	}
}

func TestAddComment_PromptError(t *testing.T) {
	boom := errors.New("no tty")
	s, comments, _ := newSession(confirm.Always(true), &scriptedPrompter{steps: []step{{err: boom}}})

	_, err := AddComment(s, "", "")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, comments.Len())
}

func TestAddComment_DefaultsToLastAuthor(t *testing.T) {
	last := storage.NewLastAuthor(storage.NewMemory())
	last.Save("Zed")

	p := &scriptedPrompter{steps: []step{{author: "Zed", text: "Hi"}}}
	s, _, _ := newSession(confirm.Always(false), p)
	s.FormOptions = append(s.FormOptions, editform.WithLastAuthor(last))

	_, err := AddComment(s, "", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"Zed"}, p.seen)
}
