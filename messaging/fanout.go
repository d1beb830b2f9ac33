package messaging

import (
	"chat-core/contract"
	"context"
	"fmt"
	"strconv"
)

// UserRoomsKey is the per-user room-activity index: roomID scored by
// last-activity timestamp, used to sort a user's rooms by recency.
func UserRoomsKey(userID string) string {
	return "uid:" + userID + ":chat:rooms"
}

// UserRoomMessagesKey is the per (user, room) message index: message id
// scored by timestamp, enabling recency-ordered retrieval.
func UserRoomMessagesKey(userID, roomID string) string {
	return "uid:" + userID + ":chat:room:" + roomID + ":messages"
}

// FanoutIndexer updates per-recipient secondary indices and unread
// markers. Its three operations are independent and idempotent on
// retry; the pipeline issues them concurrently.
type FanoutIndexer struct {
	index  contract.IOrderedIndex
	unread contract.IUnreadTracker
}

func NewFanoutIndexer(index contract.IOrderedIndex, unread contract.IUnreadTracker) FanoutIndexer {
	return FanoutIndexer{index: index, unread: unread}
}

// RecordRoomActivity upserts the timestamp into each recipient's room
// index for the room, overwriting any prior value. Callers must apply
// updates in the order they assign timestamps; the index keeps whatever
// was written last.
func (f FanoutIndexer) RecordRoomActivity(ctx context.Context, roomID string, recipients []string, timestamp int64) error {
	for _, userID := range recipients {
		if err := f.index.Add(ctx, UserRoomsKey(userID), timestamp, roomID); err != nil {
			return fmt.Errorf("room activity for %s: %w", userID, err)
		}
	}
	return nil
}

// RecordMessageForUsers upserts the message id into each recipient's
// per-room message index, keyed by timestamp.
func (f FanoutIndexer) RecordMessageForUsers(ctx context.Context, roomID string, recipients []string, messageID, timestamp int64) error {
	member := strconv.FormatInt(messageID, 10)
	for _, userID := range recipients {
		if err := f.index.Add(ctx, UserRoomMessagesKey(userID, roomID), timestamp, member); err != nil {
			return fmt.Errorf("message index for %s: %w", userID, err)
		}
	}
	return nil
}

// MarkUnread flags the room for each recipient. The pipeline excludes
// the sender before calling; the sender is still indexed, just never
// marked unread by their own message.
func (f FanoutIndexer) MarkUnread(ctx context.Context, recipients []string, roomID string) error {
	if len(recipients) == 0 {
		return nil
	}
	return f.unread.MarkUnread(ctx, recipients, roomID)
}
