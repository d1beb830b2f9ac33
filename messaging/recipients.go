package messaging

import (
	"chat-core/contract"
	"context"
	"fmt"
)

// RecipientResolver computes the fan-out recipient set for a room:
// the full membership snapshot minus members who blocked the sender.
type RecipientResolver struct {
	membership contract.IMembershipService
	blocks     contract.IBlockService
}

func NewRecipientResolver(membership contract.IMembershipService, blocks contract.IBlockService) RecipientResolver {
	return RecipientResolver{membership: membership, blocks: blocks}
}

// Resolve takes a point-in-time membership snapshot and filters it
// through one batched block check. An empty room yields an empty set;
// only a failing read is an error.
func (r RecipientResolver) Resolve(ctx context.Context, senderID, roomID string) ([]string, error) {
	members, err := r.membership.Members(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("room membership: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}
	recipients, err := r.blocks.FilterBlocked(ctx, senderID, members)
	if err != nil {
		return nil, fmt.Errorf("block filter: %w", err)
	}
	return recipients, nil
}
