package messaging

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"chat-core/contract"
	errs "chat-core/errors"

	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		req := require.New(t)
		v := NewValidator(0)

		content, err := v.Validate(ctx, "  hello  ")

		req.NoError(err)
		req.Equal("hello", content)
	})

	t.Run("should reject empty content", func(t *testing.T) {
		req := require.New(t)
		v := NewValidator(0)

		_, err := v.Validate(ctx, "")

		req.ErrorIs(err, errs.ErrInvalidMessage)
	})

	t.Run("should reject whitespace-only content", func(t *testing.T) {
		req := require.New(t)
		v := NewValidator(0)

		_, err := v.Validate(ctx, "   ")

		req.ErrorIs(err, errs.ErrInvalidMessage)
	})

	t.Run("should reject content blanked by a filter", func(t *testing.T) {
		req := require.New(t)
		blank := func(_ context.Context, _ string, _ int) (string, int, error) {
			return "", 0, nil
		}
		v := NewValidator(0, blank)

		_, err := v.Validate(ctx, "hello")

		req.ErrorIs(err, errs.ErrInvalidMessage)
	})

	t.Run("should run filters as an ordered chain", func(t *testing.T) {
		req := require.New(t)
		first := func(_ context.Context, content string, length int) (string, int, error) {
			return content + "-a", length + 2, nil
		}
		second := func(_ context.Context, content string, length int) (string, int, error) {
			return content + "-b", length + 2, nil
		}
		v := NewValidator(0, first, second)

		content, err := v.Validate(ctx, "x")

		req.NoError(err)
		req.Equal("x-a-b", content)
	})

	t.Run("should propagate a filter failure", func(t *testing.T) {
		req := require.New(t)
		boom := fmt.Errorf("boom")
		failing := func(_ context.Context, content string, length int) (string, int, error) {
			return content, length, boom
		}
		v := NewValidator(0, failing)

		_, err := v.Validate(ctx, "hello")

		req.ErrorIs(err, boom)
	})

	t.Run("should reject content over the limit and carry it", func(t *testing.T) {
		req := require.New(t)
		v := NewValidator(1000)

		_, err := v.Validate(ctx, strings.Repeat("a", 1001))

		req.ErrorIs(err, errs.ErrMessageTooLong)
		var tooLong *errs.MessageTooLongError
		req.ErrorAs(err, &tooLong)
		req.Equal(1000, tooLong.Limit)
	})

	t.Run("should compare the transformed length, not the raw one", func(t *testing.T) {
		req := require.New(t)
		expand := func(_ context.Context, content string, _ int) (string, int, error) {
			expanded := strings.Repeat(content, 4)
			return expanded, len(expanded), nil
		}
		v := NewValidator(10, contract.ContentFilter(expand))

		_, err := v.Validate(ctx, "abcd")

		req.ErrorIs(err, errs.ErrMessageTooLong)
	})

	t.Run("should accept exactly the limit", func(t *testing.T) {
		req := require.New(t)
		v := NewValidator(5)

		content, err := v.Validate(ctx, "12345")

		req.NoError(err)
		req.Equal("12345", content)
	})
}
