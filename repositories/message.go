package repositories

import (
	"chat-core/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

func messageKey(id int64) []byte {
	return []byte(fmt.Sprintf("message:%d", id))
}

// Save persists a message record as JSON under "message:<id>".
// Records are written once and never mutated by this layer.
func (m MessageRepository) Save(ctx context.Context, message domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message %d: %w", message.ID, err)
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(message.ID), bytes)
	})
}

// Get fetches the records for the given ids in one read transaction.
// Missing ids are skipped, not reported as errors; callers decide what
// an absent record means.
func (m MessageRepository) Get(ctx context.Context, ids ...int64) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var messages []domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			item, err := txn.Get(messageKey(id))
			if errors.Is(err, badger.ErrKeyNotFound) {
				m.log.Debug("message not found", "id", id)
				continue
			}
			if err != nil {
				return err
			}
			var message domain.Message
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &message)
			}); err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
