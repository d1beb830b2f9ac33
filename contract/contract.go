//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-core/domain"
	"context"
)

// IMessageStore persists message records keyed by "message:<id>".
type IMessageStore interface {
	Save(ctx context.Context, m domain.Message) error
	// Get returns the records found for the given ids, skipping missing ones.
	Get(ctx context.Context, ids ...int64) ([]domain.Message, error)
}

// IndexEntry is one member of an ordered index together with its score.
type IndexEntry struct {
	Member string
	Score  int64
}

// IOrderedIndex is a sorted-set style index: one score per member,
// members returned by ascending score. Add overwrites any prior score
// for the member (single-key atomic upsert, no multi-key transactions).
type IOrderedIndex interface {
	Add(ctx context.Context, key string, score int64, member string) error
	// Range returns members between the start and stop positions by
	// ascending score; negative positions count from the end (-1 is last).
	Range(ctx context.Context, key string, start, stop int) ([]string, error)
	// RevRangeWithScores is Range by descending score, with scores.
	RevRangeWithScores(ctx context.Context, key string, start, stop int) ([]IndexEntry, error)
	// Score reports the member's score and whether the member exists.
	Score(ctx context.Context, key, member string) (int64, bool, error)
}

// IIdentifierAllocator issues globally unique, strictly increasing
// message identifiers. The allocator owns the atomicity of the
// increment; ids are never reused, gaps are allowed.
type IIdentifierAllocator interface {
	NextID(ctx context.Context) (int64, error)
}

// IMembershipService answers room membership questions. Who is in a
// room is managed elsewhere; the pipeline only consumes the answers.
type IMembershipService interface {
	IsMember(ctx context.Context, userID, roomID string) (bool, error)
	Members(ctx context.Context, roomID string) ([]string, error)
}

// IBlockService removes candidates that have the sender on their block
// list, in one batched call.
type IBlockService interface {
	FilterBlocked(ctx context.Context, senderID string, candidates []string) ([]string, error)
}

// IUnreadTracker flags unseen messages per (user, room) pair.
type IUnreadTracker interface {
	MarkUnread(ctx context.Context, userIDs []string, roomID string) error
}

// IPresenceNotifier pushes a message to currently present room
// participants. Lower-weight than the durable fan-out; used by system
// messages only.
type IPresenceNotifier interface {
	NotifyRoomParticipants(ctx context.Context, senderID, roomID string, m domain.Message)
}

// ContentFilter rewrites a (content, length) pair during validation.
// Filters run as an ordered chain, each receiving the previous output.
type ContentFilter func(ctx context.Context, content string, length int) (string, int, error)

// SaveTransform rewrites the record before persistence.
type SaveTransform func(ctx context.Context, m domain.Message) (domain.Message, error)

// PostSaveListener observes the final message once the fan-out has
// completed. Listeners are informational and cannot fail the send.
type PostSaveListener func(ctx context.Context, m domain.Message, cmd domain.SendMessageCommand)
