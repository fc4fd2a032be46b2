// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"askbox_backend/internal/feature/auth/domain/entity"
	"askbox_backend/internal/feature/auth/transport/http/dto"
	"askbox_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// SignUp は新規ユーザーを登録し、公開プロフィールとセッショントークンを返します。
	SignUp(ctx context.Context, email, username, password, image string) (*entity.Profile, string, error)
	// SignIn はユーザーを認証し、成功時に公開プロフィールとセッショントークンを返します。
	SignIn(ctx context.Context, username, password string) (*entity.Profile, string, error)
	// Authenticate はベアラートークンを検証し、対応するユーザーの公開プロフィールを返します。
	Authenticate(ctx context.Context, token string) (*entity.Profile, error)
	// GetProfile は指定されたユーザー名の公開プロフィールを取得します。
	GetProfile(ctx context.Context, username string) (*entity.Profile, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignUp はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignUpReqにバインド
// - バリデーションエラー時は400を返却
// - メールアドレスまたはユーザー名の重複時は400を返却
// - 成功時はユーザーとセッショントークン付きで200を返却
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("sign-up validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, token, err := h.auth.SignUp(c.Request.Context(), req.Email, req.Username, req.Password, req.Image)
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			slog.Warn("sign-up conflict", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "email or username already taken"})
			return
		}
		slog.Error("sign-up failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	slog.Info("user sign-up successful", "username", profile.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{User: profile, Token: token})
}

// SignIn はユーザーログインAPIエンドポイントを処理します。
// 認証失敗時は原因（ユーザー不在・パスワード不一致）を区別しない汎用エラーを返します。
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("sign-in validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, token, err := h.auth.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("sign-in failed", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email/password invalid."})
			return
		}
		slog.Error("sign-in failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	slog.Info("user sign-in successful", "username", profile.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{User: profile, Token: token})
}

// Validate はセッショントークンの有効性確認APIエンドポイントを処理します。
// フロントエンドの「サインイン中か」の確認に使用されます。
// トークンはAuthorizationヘッダーの生の値として渡されます。
func (h *AuthHandler) Validate(c *gin.Context) {
	token := c.GetHeader("Authorization")

	profile, err := h.auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetProfile は公開プロフィール取得APIエンドポイントを処理します。
// パスワードハッシュを含まない公開プロジェクションのみを返します。
func (h *AuthHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.auth.GetProfile(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found!"})
			return
		}
		slog.Error("get profile failed", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
