// Package usecase はquestionsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"askbox_backend/internal/feature/questions/domain/entity"
)

// QuestionRepository は質問エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type QuestionRepository interface {
	// Create は新しい質問をストレージに永続化します。
	Create(ctx context.Context, q *entity.Question) error

	// FindByID はIDで質問を取得します。
	// 質問が存在しない場合、ErrQuestionNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Question, error)

	// ListByOwner は指定された所有者の質問を回答状態で絞り込んで取得します。
	// 各質問には質問者のユーザー名が付加されます。
	// answered=trueの場合はcreated_at降順（最新順）で返します。
	ListByOwner(ctx context.Context, ownerID uint, answered bool) ([]entity.AskedQuestion, error)

	// SetAnswer は回答テキストとisAnsweredフラグを単一レコードの更新で設定します。
	SetAnswer(ctx context.Context, id uint, answer string) error

	// Delete は質問を完全に削除します。
	Delete(ctx context.Context, id uint) error
}

// UserDirectory はユーザー名から所有者IDへの解決を抽象化します。
type UserDirectory interface {
	// ResolveUsername はユーザー名をユーザーIDに解決します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	ResolveUsername(ctx context.Context, username string) (uint, error)
}

// questionsUsecase は質問ライフサイクルのビジネスロジックを実装します。
// 所有者チェックをすべての変更操作の前に強制します。
type questionsUsecase struct {
	questions QuestionRepository
	users     UserDirectory
}

// NewQuestionsUsecase はquestionsUsecaseの新しいインスタンスを生成します。
func NewQuestionsUsecase(questions QuestionRepository, users UserDirectory) *questionsUsecase {
	return &questionsUsecase{
		questions: questions,
		users:     users,
	}
}

// Ask は指定されたユーザー名の受信箱に新しい質問を投稿します。
// 宛先ユーザーが存在しない場合、ErrUserNotFoundを返します。
// 質問テキストに一意性制約はなく、重複した質問も許可されます。
func (u *questionsUsecase) Ask(ctx context.Context, askerID uint, targetUsername, text string) error {
	ownerID, err := u.users.ResolveUsername(ctx, targetUsername)
	if err != nil {
		return err
	}

	q := &entity.Question{
		AskerID:  askerID,
		UserID:   ownerID,
		Question: text,
	}
	return u.questions.Create(ctx, q)
}

// ListPending は所有者の未回答の質問を取得します。
func (u *questionsUsecase) ListPending(ctx context.Context, ownerID uint) ([]entity.AskedQuestion, error) {
	return u.questions.ListByOwner(ctx, ownerID, false)
}

// ListAnswered は所有者の回答済みの質問をcreated_at降順で取得します。
func (u *questionsUsecase) ListAnswered(ctx context.Context, ownerID uint) ([]entity.AskedQuestion, error) {
	return u.questions.ListByOwner(ctx, ownerID, true)
}

// ListAnsweredByUsername はユーザー名を解決した上で回答済みの質問を取得します。
// ユーザーが存在しない場合、ErrUserNotFoundを返します。
func (u *questionsUsecase) ListAnsweredByUsername(ctx context.Context, username string) ([]entity.AskedQuestion, error) {
	ownerID, err := u.users.ResolveUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return u.ListAnswered(ctx, ownerID)
}

// Answer は質問に回答し、リクエスターの最新の未回答リストを返します。
// - 回答テキストが空の場合、ErrEmptyAnswerを返します
// - 質問が存在しない場合、ErrQuestionNotFoundを返します
// - リクエスターが所有者でない場合、ErrNotOwnerを返し、レコードは変更されません
func (u *questionsUsecase) Answer(ctx context.Context, questionID, requesterID uint, text string) ([]entity.AskedQuestion, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyAnswer
	}

	q, err := u.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q.UserID != requesterID {
		return nil, ErrNotOwner
	}

	if err := u.questions.SetAnswer(ctx, questionID, text); err != nil {
		return nil, err
	}
	return u.questions.ListByOwner(ctx, requesterID, false)
}

// Delete は質問を削除し、リクエスターの最新の未回答リストを返します。
// 所有者チェックはAnswerと同じ規則に従います。
func (u *questionsUsecase) Delete(ctx context.Context, questionID, requesterID uint) ([]entity.AskedQuestion, error) {
	q, err := u.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q.UserID != requesterID {
		return nil, ErrNotOwner
	}

	if err := u.questions.Delete(ctx, questionID); err != nil {
		return nil, err
	}
	return u.questions.ListByOwner(ctx, requesterID, false)
}
