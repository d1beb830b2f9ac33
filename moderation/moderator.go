// Package moderation censors forbidden words in message content.
// It plugs into the messaging validator as an ordered content filter.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator finds forbidden patterns with an Aho-Corasick automaton
// built over a normalized view of the text, then stars out the matching
// characters in the original, preserving spacing and punctuation.
type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewModerator builds the automaton from the censored word list. Words
// are normalized the same way scanned text is, so obfuscated variants
// ("sp4m", "s p a m") still match.
func NewModerator(censoredWords []string, replacement rune) (*Moderator, error) {
	patterns := make([][]rune, len(censoredWords))
	for i, word := range censoredWords {
		normalized, _ := normalize([]rune(word))
		patterns[i] = normalized
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, replacement: replacement}, nil
}

// Censor replaces every matched span with the replacement rune.
func (m *Moderator) Censor(original string) string {
	origRunes := []rune(original)
	normalized, origIdx := normalize(origRunes)
	if len(normalized) == 0 {
		return original
	}

	spans := m.matcher.MultiPatternSearch(normalized, false)
	if len(spans) == 0 {
		return original
	}

	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			origRunes[i] = m.replacement
		}
	}
	return string(origRunes)
}

// normalize lowercases, folds common leet substitutions, and drops
// spacing/punctuation, keeping a map back to original rune positions.
func normalize(input []rune) ([]rune, []int) {
	normalized := make([]rune, 0, len(input))
	origIdx := make([]int, 0, len(input))
	for i, r := range input {
		folded := foldLeet(r)
		if unicode.IsPunct(folded) || unicode.IsSpace(folded) || unicode.IsSymbol(folded) {
			continue
		}
		normalized = append(normalized, unicode.ToLower(folded))
		origIdx = append(origIdx, i)
	}
	return normalized, origIdx
}

func foldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
