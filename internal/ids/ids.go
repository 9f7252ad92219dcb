// Package ids provides the strategies used to give committed comments an id.
package ids

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/thenoetrevino/remark/internal/types"
)

// Generator hands out ids for comments being committed for the first time
type Generator interface {
	NextID() types.CommentID
}

// GeneratorFunc adapts a plain function to Generator
type GeneratorFunc func() types.CommentID

func (f GeneratorFunc) NextID() types.CommentID {
	return f()
}

// UUID generates random version 4 UUIDs
type UUID struct{}

func (UUID) NextID() types.CommentID {
	return types.CommentID(uuid.NewString())
}

// Sequence generates "1", "2", ... starting after Start.
// It is deterministic and intended for tests and demos.
type Sequence struct {
	Start int
	n     int
}

func (s *Sequence) NextID() types.CommentID {
	if s.n < s.Start {
		s.n = s.Start
	}
	s.n++
	return types.CommentID(strconv.Itoa(s.n))
}
