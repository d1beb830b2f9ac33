package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MembershipRepository(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	membership := NewMembershipRepository(NewSortedSetRepository(openTestDB(t)))

	req.NoError(membership.AddMember(ctx, "u1", "r1", 100))
	req.NoError(membership.AddMember(ctx, "u2", "r1", 200))

	isMember, err := membership.IsMember(ctx, "u1", "r1")
	req.NoError(err)
	req.True(isMember)

	isMember, err = membership.IsMember(ctx, "u3", "r1")
	req.NoError(err)
	req.False(isMember)

	members, err := membership.Members(ctx, "r1")
	req.NoError(err)
	req.Equal([]string{"u1", "u2"}, members)

	members, err = membership.Members(ctx, "empty")
	req.NoError(err)
	req.Empty(members)
}

func Test_BlockRepository_FilterBlocked(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	blocks := NewBlockRepository(NewSortedSetRepository(openTestDB(t)))

	req.NoError(blocks.Block(ctx, "u3", "u1", 100))

	filtered, err := blocks.FilterBlocked(ctx, "u1", []string{"u1", "u2", "u3"})
	req.NoError(err)
	req.Equal([]string{"u1", "u2"}, filtered, "u3 blocked the sender")

	filtered, err = blocks.FilterBlocked(ctx, "u2", []string{"u1", "u3"})
	req.NoError(err)
	req.Equal([]string{"u1", "u3"}, filtered, "u3 only blocked u1")
}
