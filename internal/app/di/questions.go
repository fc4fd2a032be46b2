package di

import (
	questionadapters "askbox_backend/internal/feature/questions/adapters"
	"askbox_backend/internal/feature/questions/usecase"
	"askbox_backend/internal/platform/cache"
	"askbox_backend/internal/platform/config"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewQuestionStores creates the QuestionRepository and UserDirectory
// implementations. If Redis is available, the repository is wrapped with
// a cache for answered-question lists. Otherwise, the plain
// PostgreSQL-backed repository is used directly.
func NewQuestionStores(rdb *redis.Client, cfg *config.Config, db *gorm.DB) (usecase.QuestionRepository, usecase.UserDirectory) {
	repo := questionadapters.NewQuestionPostgres(db)
	if rdb != nil {
		return cache.NewCachingQuestionRepository(rdb, cfg.CacheTTL, repo, "answers"), repo
	}
	return repo, repo
}
