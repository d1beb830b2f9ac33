package repositories

import (
	"chat-core/contract"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// SortedSetRepository implements an ordered index over BadgerDB.
//
// Two key families back each logical set:
//  1. "zm:{set}:{member}" holds the member's current score, so an Add can
//     find and remove the stale score entry in the same transaction.
//  2. "zs:{set}:{score_padded}:{member}" carries no value; the 19-digit
//     zero padding makes lexicographical iteration equal score order.
//
// The set name is percent-encoded in both families so no set is a
// key-prefix of another ("a" vs "a:b"). Padding assumes non-negative
// scores; this holds for millisecond timestamps, the only scores used.
type SortedSetRepository struct {
	db *badger.DB
}

func NewSortedSetRepository(db *badger.DB) SortedSetRepository {
	return SortedSetRepository{db: db}
}

// encodeSet escapes the set-name delimiters so the encoded form never
// contains a colon.
func encodeSet(set string) string {
	set = strings.ReplaceAll(set, "%", "%25")
	return strings.ReplaceAll(set, ":", "%3A")
}

func memberKey(set, member string) []byte {
	return []byte(fmt.Sprintf("zm:%s:%s", encodeSet(set), member))
}

func scoreKey(set string, score int64, member string) []byte {
	return []byte(fmt.Sprintf("zs:%s:%019d:%s", encodeSet(set), score, member))
}

func scorePrefix(set string) []byte {
	return []byte(fmt.Sprintf("zs:%s:", encodeSet(set)))
}

// Add upserts the member with the given score. A prior score entry for
// the same member is deleted in the same transaction, so the set never
// holds two positions for one member. Last write wins by call order.
func (s SortedSetRepository) Add(ctx context.Context, set string, score int64, member string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(memberKey(set, member))
		if err == nil {
			var prior int64
			if err := item.Value(func(val []byte) error {
				prior, err = strconv.ParseInt(string(val), 10, 64)
				return err
			}); err != nil {
				return err
			}
			if prior == score {
				return nil
			}
			if err := txn.Delete(scoreKey(set, prior, member)); err != nil {
				return err
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(memberKey(set, member), []byte(strconv.FormatInt(score, 10))); err != nil {
			return err
		}
		return txn.Set(scoreKey(set, score, member), nil)
	})
}

// Range returns members between the start and stop positions by
// ascending score. Negative positions count from the end, -1 being the
// last member, mirroring the usual sorted-set range convention.
func (s SortedSetRepository) Range(ctx context.Context, set string, start, stop int) ([]string, error) {
	entries, err := s.entries(ctx, set, false)
	if err != nil {
		return nil, err
	}
	entries = slice(entries, start, stop)
	members := make([]string, len(entries))
	for i, e := range entries {
		members[i] = e.Member
	}
	return members, nil
}

// RevRangeWithScores returns entries between the start and stop
// positions by descending score.
func (s SortedSetRepository) RevRangeWithScores(ctx context.Context, set string, start, stop int) ([]contract.IndexEntry, error) {
	entries, err := s.entries(ctx, set, true)
	if err != nil {
		return nil, err
	}
	return slice(entries, start, stop), nil
}

// Score reports the member's score and whether the member is present.
func (s SortedSetRepository) Score(ctx context.Context, set, member string) (int64, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	var score int64
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(memberKey(set, member))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			score, err = strconv.ParseInt(string(val), 10, 64)
			found = err == nil
			return err
		})
	})
	return score, found, err
}

// entries scans the full score-ordered key family of a set. The padded
// score segment has a fixed width, so member parsing is positional.
func (s SortedSetRepository) entries(ctx context.Context, set string, reverse bool) ([]contract.IndexEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := scorePrefix(set)
	var entries []contract.IndexEntry
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Reverse = reverse
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := prefix
		if reverse {
			// Seek past the highest possible score so the reverse
			// iterator lands on the newest entry.
			seekKey = append(append([]byte{}, prefix...), []byte("9999999999999999999:\xff")...)
		}
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			rest := it.Item().Key()[len(prefix):]
			if len(rest) < 20 {
				continue
			}
			score, err := strconv.ParseInt(string(rest[:19]), 10, 64)
			if err != nil {
				return err
			}
			entries = append(entries, contract.IndexEntry{
				Member: string(rest[20:]),
				Score:  score,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func slice(entries []contract.IndexEntry, start, stop int) []contract.IndexEntry {
	n := len(entries)
	if start < 0 {
		start = n + start
	}
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return nil
	}
	return entries[start : stop+1]
}
