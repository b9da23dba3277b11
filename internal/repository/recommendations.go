package repository

import (
	"encoding/json"

	"jobboard/internal/domain/recommendation"

	"github.com/google/uuid"
)

func encodeEntries(entries []recommendation.Entry) (string, error) {
	if entries == nil {
		entries = []recommendation.Entry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeEntries reads a stored recommendation list, normalising scores and
// dropping entries without a target.
func decodeEntries(raw []byte) ([]recommendation.Entry, error) {
	if len(raw) == 0 {
		return []recommendation.Entry{}, nil
	}
	var in []recommendation.Entry
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	out := make([]recommendation.Entry, 0, len(in))
	for _, e := range in {
		if e.TargetID == uuid.Nil {
			continue
		}
		e.Score = recommendation.Normalize(e.Score)
		out = append(out, e)
	}
	return out, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
