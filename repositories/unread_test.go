package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_UnreadRepository(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	unread := NewUnreadRepository(openTestDB(t))

	t.Run("should flag each user in one call", func(t *testing.T) {
		req.NoError(unread.MarkUnread(ctx, []string{"u1", "u2"}, "r1"))

		for _, userID := range []string{"u1", "u2"} {
			flagged, err := unread.IsUnread(ctx, userID, "r1")
			req.NoError(err)
			req.True(flagged)
		}
		flagged, err := unread.IsUnread(ctx, "u3", "r1")
		req.NoError(err)
		req.False(flagged)
	})

	t.Run("should scope flags per room", func(t *testing.T) {
		flagged, err := unread.IsUnread(ctx, "u1", "r2")
		req.NoError(err)
		req.False(flagged)
	})

	t.Run("should clear on mark read", func(t *testing.T) {
		req.NoError(unread.MarkRead(ctx, "u1", "r1"))

		flagged, err := unread.IsUnread(ctx, "u1", "r1")
		req.NoError(err)
		req.False(flagged)
	})

	t.Run("should accept an empty user list", func(t *testing.T) {
		req.NoError(unread.MarkUnread(ctx, nil, "r1"))
	})
}
