package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// UnreadRepository tracks the per (user, room) unread flag.
type UnreadRepository struct {
	db *badger.DB
}

func NewUnreadRepository(db *badger.DB) UnreadRepository {
	return UnreadRepository{db: db}
}

func unreadKey(userID, roomID string) []byte {
	return []byte(fmt.Sprintf("unread:%s:%s", userID, roomID))
}

// MarkUnread flags the room as unread for each user in one transaction.
func (u UnreadRepository) MarkUnread(ctx context.Context, userIDs []string, roomID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}
	return u.db.Update(func(txn *badger.Txn) error {
		for _, userID := range userIDs {
			if err := txn.Set(unreadKey(userID, roomID), []byte("1")); err != nil {
				return err
			}
		}
		return nil
	})
}

// MarkRead clears the flag, typically when the user opens the room.
func (u UnreadRepository) MarkRead(ctx context.Context, userID, roomID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(unreadKey(userID, roomID))
	})
}

// IsUnread reports whether the room currently holds unseen messages for
// the user.
func (u UnreadRepository) IsUnread(ctx context.Context, userID, roomID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	unread := false
	err := u.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(unreadKey(userID, roomID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		unread = true
		return nil
	})
	return unread, err
}
