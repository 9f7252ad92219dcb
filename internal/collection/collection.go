// Package collection holds the ordered list of committed comments the
// comment button hands records to.
package collection

import (
	"log/slog"

	"github.com/thenoetrevino/remark/internal/events"
	"github.com/thenoetrevino/remark/internal/models"
	"github.com/thenoetrevino/remark/internal/types"
)

// Adder is the only capability the comment button needs from a collection
type Adder interface {
	Add(record models.Record)
}

// Collection is an ordered, in-memory set of records keyed by id
type Collection struct {
	records []models.Record
	byID    map[types.CommentID]models.Record
	added   events.Signal[models.Record]
}

// New creates a collection holding the given records in order
func New(records ...models.Record) *Collection {
	c := &Collection{byID: make(map[types.CommentID]models.Record)}
	for _, r := range records {
		c.insert(r)
	}
	return c
}

// Add appends record. Records with an id already present are ignored, and
// the same record instance is never added twice.
func (c *Collection) Add(record models.Record) {
	if !c.insert(record) {
		slog.Debug("collection: ignoring duplicate record", "id", record.ID())
		return
	}
	c.added.Emit(record)
}

// OnAdd registers fn to run after every successful Add
func (c *Collection) OnAdd(fn func(models.Record)) *events.Subscription {
	return c.added.Subscribe(fn)
}

// Len returns the number of records
func (c *Collection) Len() int {
	return len(c.records)
}

// All returns the records in insertion order
func (c *Collection) All() []models.Record {
	out := make([]models.Record, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the record with the given id
func (c *Collection) Get(id types.CommentID) (models.Record, bool) {
	r, ok := c.byID[id]
	return r, ok
}

func (c *Collection) insert(record models.Record) bool {
	for _, existing := range c.records {
		if existing == record {
			return false
		}
	}
	if !record.IsNew() {
		if _, taken := c.byID[record.ID()]; taken {
			return false
		}
		c.byID[record.ID()] = record
	}
	c.records = append(c.records, record)
	return true
}
