package repositories

import (
	"context"
	"testing"

	"chat-core/contract"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_SortedSet_RangeByAscendingScore(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	sets := NewSortedSetRepository(openTestDB(t))

	req.NoError(sets.Add(ctx, "rooms", 300, "c"))
	req.NoError(sets.Add(ctx, "rooms", 100, "a"))
	req.NoError(sets.Add(ctx, "rooms", 200, "b"))

	members, err := sets.Range(ctx, "rooms", 0, -1)
	req.NoError(err)
	req.Equal([]string{"a", "b", "c"}, members)

	members, err = sets.Range(ctx, "rooms", 1, -1)
	req.NoError(err)
	req.Equal([]string{"b", "c"}, members)
}

func Test_SortedSet_AddIsAnUpsert(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	sets := NewSortedSetRepository(openTestDB(t))

	req.NoError(sets.Add(ctx, "rooms", 100, "a"))
	req.NoError(sets.Add(ctx, "rooms", 200, "b"))
	req.NoError(sets.Add(ctx, "rooms", 300, "a"))

	members, err := sets.Range(ctx, "rooms", 0, -1)
	req.NoError(err)
	req.Equal([]string{"b", "a"}, members, "one position per member, last score wins")

	score, found, err := sets.Score(ctx, "rooms", "a")
	req.NoError(err)
	req.True(found)
	req.Equal(int64(300), score)
}

func Test_SortedSet_RevRangeWithScores(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	sets := NewSortedSetRepository(openTestDB(t))

	req.NoError(sets.Add(ctx, "mids", 100, "1"))
	req.NoError(sets.Add(ctx, "mids", 300, "3"))
	req.NoError(sets.Add(ctx, "mids", 200, "2"))

	entries, err := sets.RevRangeWithScores(ctx, "mids", 0, 0)
	req.NoError(err)
	req.Equal([]contract.IndexEntry{{Member: "3", Score: 300}}, entries)

	entries, err = sets.RevRangeWithScores(ctx, "mids", 0, -1)
	req.NoError(err)
	req.Equal([]contract.IndexEntry{
		{Member: "3", Score: 300},
		{Member: "2", Score: 200},
		{Member: "1", Score: 100},
	}, entries)
}

func Test_SortedSet_EmptySet(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	sets := NewSortedSetRepository(openTestDB(t))

	members, err := sets.Range(ctx, "nothing", 0, -1)
	req.NoError(err)
	req.Empty(members)

	entries, err := sets.RevRangeWithScores(ctx, "nothing", 0, 0)
	req.NoError(err)
	req.Empty(entries)

	_, found, err := sets.Score(ctx, "nothing", "a")
	req.NoError(err)
	req.False(found)
}

func Test_SortedSet_KeysDoNotBleedAcrossSets(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	sets := NewSortedSetRepository(openTestDB(t))

	req.NoError(sets.Add(ctx, "uid:1:chat:rooms", 100, "r1"))
	req.NoError(sets.Add(ctx, "uid:1:chat:room:r1:messages", 100, "42"))

	members, err := sets.Range(ctx, "uid:1:chat:rooms", 0, -1)
	req.NoError(err)
	req.Equal([]string{"r1"}, members)
}

func Test_SortedSet_PrefixSetNamesStayDisjoint(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	sets := NewSortedSetRepository(openTestDB(t))

	// "a" is a prefix of "a:b"; scans of one must never see the other.
	req.NoError(sets.Add(ctx, "a", 100, "short"))
	req.NoError(sets.Add(ctx, "a:b", 200, "long"))

	members, err := sets.Range(ctx, "a", 0, -1)
	req.NoError(err)
	req.Equal([]string{"short"}, members)

	members, err = sets.Range(ctx, "a:b", 0, -1)
	req.NoError(err)
	req.Equal([]string{"long"}, members)

	entries, err := sets.RevRangeWithScores(ctx, "a", 0, -1)
	req.NoError(err)
	req.Len(entries, 1)
	req.Equal("short", entries[0].Member)
}
