package moderation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Moderator_Censor(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"spam", "scam"}, '*')
	req.NoError(err)

	t.Run("should star out a forbidden word", func(t *testing.T) {
		req.Equal("pure ****", moderator.Censor("pure spam"))
	})

	t.Run("should catch leet variants", func(t *testing.T) {
		req.Equal("pure ****", moderator.Censor("pure 5p4m"))
	})

	t.Run("should leave clean content untouched", func(t *testing.T) {
		req.Equal("hello there", moderator.Censor("hello there"))
	})

	t.Run("should preserve surrounding punctuation", func(t *testing.T) {
		req.Equal("no ****!", moderator.Censor("no scam!"))
	})
}

func Test_Filter_ReportsTransformedLength(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"spam"}, '*')
	req.NoError(err)

	filter := Filter(moderator)
	content, length, err := filter(context.Background(), "spam alert", 10)

	req.NoError(err)
	req.Equal("**** alert", content)
	req.Equal(10, length)
}
