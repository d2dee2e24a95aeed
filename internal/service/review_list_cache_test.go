package service

import (
	"math"
	"testing"
	"time"

	"course_review_backend/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *env) useRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	e.reviews.Cache = repository.NewReviewPageCache(rdb, time.Minute)
	return mr
}

func (e *env) listCourse(t *testing.T) int64 {
	t.Helper()
	page, err := e.reviews.List(e.ctx, ListReviewsQuery{TargetID: e.course.ID, TargetType: "COURSE"})
	require.NoError(t, err)
	return page.Total
}

func TestList_CachedUntilWrite(t *testing.T) {
	e := newEnv(t)
	mr := e.useRedis(t)

	first := e.mustCreate(t, e.request(4, "first", e.a1))
	assert.EqualValues(t, 1, e.listCourse(t))
	assert.Len(t, mr.Keys(), 2, "version counter and one cached page")

	// a row written behind the service's back stays hidden until a write invalidates
	require.NoError(t, e.db.Model(first).Update("score", 2.5).Error)
	page, err := e.reviews.List(e.ctx, ListReviewsQuery{TargetID: e.course.ID, TargetType: "COURSE"})
	require.NoError(t, err)
	assert.Equal(t, 4.0, page.Items[0].Score)

	e.mustCreate(t, e.request(5, "second", e.b1))
	assert.EqualValues(t, 2, e.listCourse(t))

	require.NoError(t, e.reviews.Delete(e.ctx, first.ID, callerOf(e.owner)))
	assert.EqualValues(t, 1, e.listCourse(t))
}

func TestList_RedisUnavailable(t *testing.T) {
	e := newEnv(t)
	mr := e.useRedis(t)
	mr.Close()

	e.mustCreate(t, e.request(4, "first", e.a1))
	assert.EqualValues(t, 1, e.listCourse(t))
	e.mustCreate(t, e.request(3, "second", e.b1))
	assert.EqualValues(t, 2, e.listCourse(t))
}

func TestList_HugePageIsClamped(t *testing.T) {
	e := newEnv(t)
	e.mustCreate(t, e.request(4, "only", e.a1))

	page, err := e.reviews.List(e.ctx, ListReviewsQuery{
		TargetID:   e.course.ID,
		TargetType: "COURSE",
		Page:       math.MaxInt,
	})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32/10+1, page.Page)
	assert.EqualValues(t, 1, page.Total)
	assert.Empty(t, page.Items)
}
