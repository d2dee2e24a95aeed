package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"course_review_backend/internal/model"
	"course_review_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ReviewPageCache keeps rendered review list pages in redis. Every target has
// a version counter that is part of each page key; bumping it on a write
// orphans all cached pages of that target at once. A nil client disables it.
type ReviewPageCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewReviewPageCache(rdb *redis.Client, ttl time.Duration) *ReviewPageCache {
	return &ReviewPageCache{Redis: rdb, TTL: ttl}
}

func (c *ReviewPageCache) enabled() bool {
	return c != nil && c.Redis != nil && c.TTL > 0
}

func versionKey(targetType model.TargetType, targetID string) string {
	return fmt.Sprintf("review:list:version:%s:%s", targetType, targetID)
}

func pageKey(q ReviewPageQuery, version int64) string {
	sorts := q.Sort
	if len(sorts) == 0 {
		sorts = DefaultReviewSort
	}
	parts := make([]string, len(sorts))
	for i, s := range sorts {
		dir := "asc"
		if s.Desc {
			dir = "desc"
		}
		parts[i] = s.Key + ":" + dir
	}
	return fmt.Sprintf("review:list:%s:%s:v%d:p%d:s%d:%s",
		q.TargetType, q.TargetID, version, q.Page, q.PageSize, strings.Join(parts, ","))
}

func (c *ReviewPageCache) version(ctx context.Context, targetType model.TargetType, targetID string) (int64, error) {
	v, err := c.Redis.Get(ctx, versionKey(targetType, targetID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}

// NoCacheVersion is returned by Get when the cache cannot be used; Set
// ignores pages carrying it.
const NoCacheVersion int64 = -1

// Get returns a cached page together with the target version it looked
// under. Misses and redis failures both report false. The version must be
// passed to Set for the page loaded after a miss, so a write that commits
// in between leaves that page under an orphaned key.
func (c *ReviewPageCache) Get(ctx context.Context, q ReviewPageQuery) (*model.ReviewPage, int64, bool) {
	if !c.enabled() {
		return nil, NoCacheVersion, false
	}
	version, err := c.version(ctx, q.TargetType, q.TargetID)
	if err != nil {
		logger.Log.Debug("review cache version lookup failed", zap.Error(err))
		return nil, NoCacheVersion, false
	}
	raw, err := c.Redis.Get(ctx, pageKey(q, version)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Debug("review cache read failed", zap.Error(err))
		}
		return nil, version, false
	}
	var page model.ReviewPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, version, false
	}
	return &page, version, true
}

// Set stores page under the version Get reported before the page was loaded.
func (c *ReviewPageCache) Set(ctx context.Context, q ReviewPageQuery, version int64, page *model.ReviewPage) {
	if !c.enabled() || version == NoCacheVersion {
		return
	}
	raw, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, pageKey(q, version), raw, c.TTL).Err(); err != nil {
		logger.Log.Debug("review cache write failed", zap.Error(err))
	}
}

// Invalidate drops every cached page of the target.
func (c *ReviewPageCache) Invalidate(ctx context.Context, targetType model.TargetType, targetID string) {
	if !c.enabled() {
		return
	}
	if err := c.Redis.Incr(ctx, versionKey(targetType, targetID)).Err(); err != nil {
		logger.Log.Warn("review cache invalidation failed",
			zap.String("targetType", string(targetType)),
			zap.String("targetId", targetID),
			zap.Error(err))
	}
}
