package router

import (
	authhandler "askbox_backend/internal/feature/auth/transport/handler"
	questionhandler "askbox_backend/internal/feature/questions/transport/handler"
	"askbox_backend/internal/platform/http/handler"
	jwtmw "askbox_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(auth *authhandler.AuthHandler, questions *questionhandler.QuestionHandler,
	authenticator jwtmw.Authenticator) *gin.Engine {
	r := gin.Default()

	// CORS追加 ブラウザのフロントエンドから呼ばれるため
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/sign-up", auth.SignUp)
	// ログイン（JWT 発行）
	r.POST("/sign-in", auth.SignIn)
	// セッショントークンの有効性確認
	r.GET("/validate", auth.Validate)
	// 公開プロフィール取得
	r.GET("/users/:username", auth.GetProfile)
	// 回答済み質問の公開一覧
	r.GET("/answers/:username", questions.ListAnswered)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	authed := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	authed.Use(jwtmw.AuthRequired(authenticator))
	{
		authed.POST("/questions", questions.Post)
		authed.GET("/questions", questions.ListPending)
		authed.PATCH("/questions/:id", questions.Answer)
		authed.DELETE("/questions/:id", questions.Delete)
	}

	return r
}
