// Package messaging implements the message-creation and fan-out
// pipeline: validation, persistence, per-recipient indexing and unread
// tracking for room-based chat.
package messaging

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"chat-core/contract"
	errs "chat-core/errors"
)

// DefaultMaxContentLength bounds transformed content when no limit is
// configured.
const DefaultMaxContentLength = 1000

// Validator normalizes and validates raw message content. Content
// filters run as an ordered chain between the emptiness checks, since a
// filter may blank or grow the content.
type Validator struct {
	maxLength int
	filters   []contract.ContentFilter
}

func NewValidator(maxLength int, filters ...contract.ContentFilter) Validator {
	if maxLength <= 0 {
		maxLength = DefaultMaxContentLength
	}
	return Validator{maxLength: maxLength, filters: filters}
}

// Validate trims the raw content, runs the filter chain, and checks the
// transformed result against the emptiness and length policy. The
// length compared is the filtered length, not the raw one.
func (v Validator) Validate(ctx context.Context, raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", errs.ErrInvalidMessage
	}

	length := utf8.RuneCountInString(content)
	var err error
	for _, filter := range v.filters {
		content, length, err = filter(ctx, content, length)
		if err != nil {
			return "", fmt.Errorf("content filter: %w", err)
		}
	}

	if content == "" {
		return "", errs.ErrInvalidMessage
	}
	if length > v.maxLength {
		return "", &errs.MessageTooLongError{Limit: v.maxLength}
	}
	return content, nil
}
