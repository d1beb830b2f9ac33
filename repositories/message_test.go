package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chat-core/domain"

	"github.com/stretchr/testify/require"
)

func Test_MessageRepository_SaveAndGet(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	message := domain.Message{
		ID:        1,
		Content:   "this message will self destruct in 5 seconds",
		Timestamp: time.Now().UnixMilli(),
		SenderID:  "alice",
		RoomID:    "r1",
		SourceIP:  "198.51.100.4",
	}
	req.NoError(repository.Save(ctx, message))

	fetched, err := repository.Get(ctx, 1)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal(message, fetched[0])
}

func Test_MessageRepository_GetSkipsMissingIds(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	req.NoError(repository.Save(ctx, domain.Message{ID: 1, Content: "a", SenderID: "u1", RoomID: "r1"}))
	req.NoError(repository.Save(ctx, domain.Message{ID: 3, Content: "c", SenderID: "u1", RoomID: "r1"}))

	fetched, err := repository.Get(ctx, 1, 2, 3)
	req.NoError(err)
	req.Len(fetched, 2)
	req.Equal("a", fetched[0].Content)
	req.Equal("c", fetched[1].Content)
}
