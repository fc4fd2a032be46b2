// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"askbox_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスまたはユーザー名が既に存在する場合、ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenCodec はセッショントークンの発行・検証のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenCodec interface {
	// IssueToken は指定されたユーザーの署名済みセッショントークンを発行します。
	IssueToken(userID uint) (string, error)
	// VerifyToken はトークンを検証し、埋め込まれたユーザーIDを返します。
	// 署名不一致・ペイロード不正・有効期限切れの場合はエラーを返します。
	VerifyToken(token string) (uint, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens TokenCodec
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenCodec) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// SignUp はハッシュ化されたパスワードで新規ユーザーを登録し、
// 新規ユーザーのセッショントークンを発行します。
// メールアドレスまたはユーザー名が重複する場合、ErrUserAlreadyExistsを返します。
func (u *authUsecase) SignUp(ctx context.Context, email, username, password, image string) (*entity.Profile, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashed),
		Image:    image,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user.Profile(), token, nil
}

// SignIn はユーザーを認証し、成功時に公開プロフィールとセッショントークンを返します。
// ユーザー未検出とパスワード不一致は区別せず、常にErrInvalidCredentialsを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) SignIn(ctx context.Context, username, password string) (*entity.Profile, string, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.IssueToken(user.ID)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", tokenErr)
	}
	return user.Profile(), token, nil
}

// Authenticate はベアラートークンを検証し、対応するユーザーの公開プロフィールを返します。
// トークンが不正・期限切れの場合、またはユーザーが既に削除されている場合、
// ErrUnauthenticatedを返します。
func (u *authUsecase) Authenticate(ctx context.Context, token string) (*entity.Profile, error) {
	userID, err := u.tokens.VerifyToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// 削除済みユーザーの古いトークンは認証失敗として扱う
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user.Profile(), nil
}

// GetProfile は指定されたユーザー名の公開プロフィールを取得します。
// ユーザーが存在しない場合、ErrUserNotFoundを返します。
func (u *authUsecase) GetProfile(ctx context.Context, username string) (*entity.Profile, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}
