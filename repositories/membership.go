package repositories

import (
	"chat-core/contract"
	"context"
)

// MembershipRepository is a reference implementation of the room
// membership collaborator, backed by the ordered index. Each room keeps
// its members in "chat:room:<id>:uids" scored by join time.
type MembershipRepository struct {
	index contract.IOrderedIndex
}

func NewMembershipRepository(index contract.IOrderedIndex) MembershipRepository {
	return MembershipRepository{index: index}
}

func roomMembersKey(roomID string) string {
	return "chat:room:" + roomID + ":uids"
}

func (m MembershipRepository) AddMember(ctx context.Context, userID, roomID string, joinedAt int64) error {
	return m.index.Add(ctx, roomMembersKey(roomID), joinedAt, userID)
}

func (m MembershipRepository) IsMember(ctx context.Context, userID, roomID string) (bool, error) {
	_, found, err := m.index.Score(ctx, roomMembersKey(roomID), userID)
	return found, err
}

// Members returns the full current membership snapshot. An empty room
// yields an empty slice, not an error.
func (m MembershipRepository) Members(ctx context.Context, roomID string) ([]string, error) {
	return m.index.Range(ctx, roomMembersKey(roomID), 0, -1)
}

// BlockRepository is a reference implementation of the block-list
// collaborator. Each user keeps the ids they blocked in
// "uid:<uid>:blocked" scored by block time.
type BlockRepository struct {
	index contract.IOrderedIndex
}

func NewBlockRepository(index contract.IOrderedIndex) BlockRepository {
	return BlockRepository{index: index}
}

func blockedKey(userID string) string {
	return "uid:" + userID + ":blocked"
}

func (b BlockRepository) Block(ctx context.Context, userID, blockedID string, at int64) error {
	return b.index.Add(ctx, blockedKey(userID), at, blockedID)
}

// FilterBlocked drops every candidate that has the sender on their
// block list. The batched shape keeps the pipeline at one collaborator
// call per send regardless of room size.
func (b BlockRepository) FilterBlocked(ctx context.Context, senderID string, candidates []string) ([]string, error) {
	filtered := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		_, blocked, err := b.index.Score(ctx, blockedKey(candidate), senderID)
		if err != nil {
			return nil, err
		}
		if !blocked {
			filtered = append(filtered, candidate)
		}
	}
	return filtered, nil
}
