// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"askbox_backend/internal/feature/questions/domain/entity"
	"askbox_backend/internal/feature/questions/usecase"
)

// CachingQuestionRepository decorates a QuestionRepository with Redis
// caching for answered-question lists. Those lists are public and
// read-heavy, while pending lists are owner-private and must always
// reflect the latest mutation, so only the answered side is cached.
type CachingQuestionRepository struct {
	inner     usecase.QuestionRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.QuestionRepository = (*CachingQuestionRepository)(nil)

// NewCachingQuestionRepository decorates a QuestionRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "answers".
func NewCachingQuestionRepository(rdb *redis.Client, ttl time.Duration, inner usecase.QuestionRepository, namespace string) *CachingQuestionRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "answers"
	}
	return &CachingQuestionRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a new question. A new question starts pending, so the
// answered-list cache is unaffected.
func (c *CachingQuestionRepository) Create(ctx context.Context, q *entity.Question) error {
	return c.inner.Create(ctx, q)
}

// FindByID retrieves a single question, always from the underlying repository.
func (c *CachingQuestionRepository) FindByID(ctx context.Context, id uint) (*entity.Question, error) {
	return c.inner.FindByID(ctx, id)
}

// ListByOwner retrieves question lists, serving answered lists from cache
// when possible and falling back to the database.
func (c *CachingQuestionRepository) ListByOwner(ctx context.Context, ownerID uint, answered bool) ([]entity.AskedQuestion, error) {
	// Pending lists and cache-less deployments bypass the cache
	if !answered || c.rdb == nil {
		return c.inner.ListByOwner(ctx, ownerID, answered)
	}

	key := c.cacheKey(ownerID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.AskedQuestion
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByOwner(ctx, ownerID, answered)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// SetAnswer updates the question and invalidates the owner's cached
// answered list so the next read sees the new answer.
func (c *CachingQuestionRepository) SetAnswer(ctx context.Context, id uint, answer string) error {
	ownerID, ok := c.ownerOf(ctx, id)

	if err := c.inner.SetAnswer(ctx, id, answer); err != nil {
		return err
	}

	if ok {
		c.invalidate(ctx, ownerID)
	}
	return nil
}

// Delete removes the question and invalidates the owner's cached
// answered list.
func (c *CachingQuestionRepository) Delete(ctx context.Context, id uint) error {
	// Resolve the owner before the record disappears
	ownerID, ok := c.ownerOf(ctx, id)

	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}

	if ok {
		c.invalidate(ctx, ownerID)
	}
	return nil
}

// ownerOf looks up the owning user of a question for cache invalidation.
func (c *CachingQuestionRepository) ownerOf(ctx context.Context, id uint) (uint, bool) {
	if c.rdb == nil {
		return 0, false
	}
	q, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return 0, false
	}
	return q.UserID, true
}

// invalidate drops the cached answered list for an owner. Best effort:
// a failed invalidation only shortens cache freshness, never correctness
// beyond the TTL.
func (c *CachingQuestionRepository) invalidate(ctx context.Context, ownerID uint) {
	_ = c.rdb.Del(ctx, c.cacheKey(ownerID)).Err()
}

// cacheKey builds the Redis key for an owner's answered list.
func (c *CachingQuestionRepository) cacheKey(ownerID uint) string {
	return fmt.Sprintf("%s:owner:%d", c.namespace, ownerID)
}
