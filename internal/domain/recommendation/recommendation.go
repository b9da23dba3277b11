// Package recommendation holds the read-side logic over precomputed
// (target, score) lists attached to résumés and jobs.
//
// Scores are produced by an external scorer. A target that is absent from a
// list scores 0, the same as an explicit zero.
package recommendation

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

type Entry struct {
	TargetID uuid.UUID `json:"target_id"`
	Score    float64   `json:"score"`
}

type Scored[T any] struct {
	Item  T
	Score float64
}

// Normalize returns the score as a finite non-negative number.
func Normalize(score float64) float64 {
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		return 0
	}
	return score
}

// ScoreOf returns the score of the first entry targeting id, or 0.
func ScoreOf(entries []Entry, id uuid.UUID) float64 {
	for _, e := range entries {
		if e.TargetID == id {
			return Normalize(e.Score)
		}
	}
	return 0
}

// TargetIDs lists the distinct non-nil targets in list order.
func TargetIDs(entries []Entry) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	out := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if e.TargetID == uuid.Nil {
			continue
		}
		if _, ok := seen[e.TargetID]; ok {
			continue
		}
		seen[e.TargetID] = struct{}{}
		out = append(out, e.TargetID)
	}
	return out
}

// Rank joins entries against live records and orders the result by score,
// highest first. Entries whose target is missing from records are dropped.
// Equal scores keep their order in entries.
func Rank[T any](entries []Entry, records map[uuid.UUID]T) []Scored[T] {
	out := make([]Scored[T], 0, len(entries))
	emitted := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		rec, ok := records[e.TargetID]
		if !ok {
			continue
		}
		if _, dup := emitted[e.TargetID]; dup {
			continue
		}
		emitted[e.TargetID] = struct{}{}
		out = append(out, Scored[T]{Item: rec, Score: Normalize(e.Score)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Best folds entries down to the highest scoring one. On ties the entry seen
// first wins. ok is false for an empty list.
func Best(entries []Entry) (best Entry, ok bool) {
	for _, e := range entries {
		e.Score = Normalize(e.Score)
		if !ok || e.Score > best.Score {
			best = e
			ok = true
		}
	}
	return best, ok
}

type Item[T any] struct {
	Value   T
	Entries []Entry
}

type BestMatch[T any] struct {
	Item T
	Best Entry
}

// BestPerItem picks the best entry of each item. Items without entries are
// skipped rather than reported with a zero score.
func BestPerItem[T any](items []Item[T]) []BestMatch[T] {
	out := make([]BestMatch[T], 0, len(items))
	for _, it := range items {
		b, ok := Best(it.Entries)
		if !ok {
			continue
		}
		out = append(out, BestMatch[T]{Item: it.Value, Best: b})
	}
	return out
}
