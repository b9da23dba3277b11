package recommendation

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRank_DropsMissingTargetsAndSortsByScore(t *testing.T) {
	t1, t2, t3 := uuid.New(), uuid.New(), uuid.New()
	entries := []Entry{{t1, 0.9}, {t2, 0.95}, {t3, 0.2}}
	records := map[uuid.UUID]string{t1: "t1", t2: "t2"}

	got := Rank(entries, records)
	require.Len(t, got, 2)
	require.Equal(t, "t2", got[0].Item)
	require.Equal(t, 0.95, got[0].Score)
	require.Equal(t, "t1", got[1].Item)
	require.Equal(t, 0.9, got[1].Score)
}

func TestRank_TiesKeepListOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	entries := []Entry{{a, 0.5}, {b, 0.7}, {c, 0.5}}
	records := map[uuid.UUID]string{a: "a", b: "b", c: "c"}

	got := Rank(entries, records)
	require.Equal(t, []string{"b", "a", "c"}, []string{got[0].Item, got[1].Item, got[2].Item})
}

func TestRank_DuplicateTargetUsesFirstEntry(t *testing.T) {
	a := uuid.New()
	got := Rank([]Entry{{a, 0.3}, {a, 0.9}}, map[uuid.UUID]int{a: 1})
	require.Len(t, got, 1)
	require.Equal(t, 0.3, got[0].Score)
}

func TestRank_Empty(t *testing.T) {
	got := Rank[string](nil, nil)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestScoreOf(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	entries := []Entry{{a, 0.42}}

	require.Equal(t, 0.42, ScoreOf(entries, a))
	require.Equal(t, 0.0, ScoreOf(entries, b))
	require.Equal(t, 0.0, ScoreOf(nil, a))
}

func TestBest_FirstSeenWinsTies(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	got, ok := Best([]Entry{{a, 0.8}, {b, 0.8}})
	require.True(t, ok)
	require.Equal(t, a, got.TargetID)

	_, ok = Best(nil)
	require.False(t, ok)
}

func TestBestPerItem_SkipsItemsWithoutEntries(t *testing.T) {
	r1, r2 := uuid.New(), uuid.New()
	items := []Item[string]{
		{Value: "job-1", Entries: []Entry{{r1, 0.4}, {r2, 0.7}}},
		{Value: "job-2"},
	}

	got := BestPerItem(items)
	require.Len(t, got, 1)
	require.Equal(t, "job-1", got[0].Item)
	require.Equal(t, r2, got[0].Best.TargetID)
	require.Equal(t, 0.7, got[0].Best.Score)
}

func TestNormalize(t *testing.T) {
	require.Equal(t, 0.0, Normalize(math.NaN()))
	require.Equal(t, 0.0, Normalize(math.Inf(1)))
	require.Equal(t, 0.0, Normalize(-1))
	require.Equal(t, 3.5, Normalize(3.5))
}

func TestTargetIDs_DedupesAndSkipsNil(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := TargetIDs([]Entry{{a, 1}, {uuid.Nil, 1}, {b, 1}, {a, 2}})
	require.Equal(t, []uuid.UUID{a, b}, got)
}
