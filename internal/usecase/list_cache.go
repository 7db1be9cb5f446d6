package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// ListCache caches keyword list results. Implementations may degrade to a
// no-op when the backing store is unavailable.
type ListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const JobsListCachePattern = "jobs:list:*"

func JobsListCacheKey(keyword string) string {
	keyword = strings.TrimSpace(keyword)
	keyword = strings.ToLower(keyword)
	keyword = strings.Join(strings.Fields(keyword), " ")

	sum := sha256.Sum256([]byte(keyword))
	return "jobs:list:" + hex.EncodeToString(sum[:])
}
