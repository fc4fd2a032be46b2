package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"askbox_backend/internal/app/di"
	"askbox_backend/internal/app/router"
	authadapters "askbox_backend/internal/feature/auth/adapters"
	authhandler "askbox_backend/internal/feature/auth/transport/handler"
	authusecase "askbox_backend/internal/feature/auth/usecase"
	questionhandler "askbox_backend/internal/feature/questions/transport/handler"
	questionusecase "askbox_backend/internal/feature/questions/usecase"
	"askbox_backend/internal/platform/config"
	platformdb "askbox_backend/internal/platform/db"
	jwtmw "askbox_backend/internal/platform/jwt"
	platformredis "askbox_backend/internal/platform/redis"
)

func main() {
	// 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := platformdb.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		if rdb != nil {
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	questionRepo, userDir := di.NewQuestionStores(rdb, cfg, db)

	// Usecase
	codec := jwtmw.NewCodec(cfg.JWTSecret, cfg.TokenLifetime)
	authUC := authusecase.NewAuthUsecase(userRepo, codec)
	questionsUC := questionusecase.NewQuestionsUsecase(questionRepo, userDir)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	questionsH := questionhandler.NewQuestionHandler(questionsUC)

	// ルータ生成
	r := router.NewRouter(authH, questionsH, authUC)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
