package moderation

import (
	"chat-core/contract"
	"context"
	"unicode/utf8"
)

// Filter adapts a Moderator into a content filter for the messaging
// validation chain. Censoring rewrites characters in place, so the
// reported length only changes when the replacement alters rune count.
func Filter(m *Moderator) contract.ContentFilter {
	return func(_ context.Context, content string, _ int) (string, int, error) {
		censored := m.Censor(content)
		return censored, utf8.RuneCountInString(censored), nil
	}
}
