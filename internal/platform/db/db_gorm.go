package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "askbox_backend/internal/feature/auth/domain/entity"
	questionentity "askbox_backend/internal/feature/questions/domain/entity"
	"askbox_backend/internal/platform/config"
)

// OpenDB opens the PostgreSQL connection described by the configuration.
// The database may still be starting up alongside this process, so the
// connection is retried for up to 60 seconds before giving up.
func OpenDB(cfg *config.Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, Question）
		if err := db.AutoMigrate(
			&authentity.User{},
			&questionentity.Question{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
