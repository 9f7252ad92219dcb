package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/remark/internal/types"
)

func TestUUID_ProducesDistinctParseableIDs(t *testing.T) {
	var gen Generator = UUID{}

	a := gen.NextID()
	b := gen.NextID()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a.String())
	require.NoError(t, err)
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  []types.CommentID
	}{
		{name: "from zero", start: 0, want: []types.CommentID{"1", "2", "3"}},
		{name: "from offset", start: 10, want: []types.CommentID{"11", "12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := &Sequence{Start: tt.start}
			for _, want := range tt.want {
				assert.Equal(t, want, seq.NextID())
			}
		})
	}
}

func TestGeneratorFunc(t *testing.T) {
	gen := GeneratorFunc(func() types.CommentID { return "fixed" })
	assert.Equal(t, types.CommentID("fixed"), gen.NextID())
}
