package repositories

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// CounterRepository allocates message identifiers from a badger
// Sequence. The sequence owns the atomicity of the increment and is
// safe under concurrent callers; ids are strictly increasing, never
// reused, and may contain gaps when a leased bandwidth block is
// discarded on shutdown.
type CounterRepository struct {
	seq *badger.Sequence
}

// sequenceBandwidth is the lease size; larger values mean fewer disk
// writes per allocation and larger potential gaps after a restart.
const sequenceBandwidth = 128

func NewCounterRepository(db *badger.DB) (*CounterRepository, error) {
	seq, err := db.GetSequence([]byte("global:nextMessageId"), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("message id sequence: %w", err)
	}
	return &CounterRepository{seq: seq}, nil
}

func (c *CounterRepository) NextID(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	id, err := c.seq.Next()
	if err != nil {
		return 0, fmt.Errorf("identifier allocation: %w", err)
	}
	// Sequences start at zero; message ids start at one.
	return int64(id) + 1, nil
}

// Close releases the unused part of the current lease back to the
// sequence key. Must be called before closing the database.
func (c *CounterRepository) Close() error {
	return c.seq.Release()
}
