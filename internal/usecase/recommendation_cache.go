package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const recommendationCachePrefix = "recommendations:"

type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

func recommendationCacheKey(kind string, id uuid.UUID) string {
	return recommendationCachePrefix + strings.ToLower(strings.TrimSpace(kind)) + ":" + id.String()
}

// RecommendationCachePattern matches every cached recommendation lookup.
func RecommendationCachePattern() string {
	return recommendationCachePrefix + "*"
}
