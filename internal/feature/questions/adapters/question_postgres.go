// Package adapters はquestionsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"askbox_backend/internal/feature/questions/domain/entity"
	"askbox_backend/internal/feature/questions/usecase"
)

// questionPostgres はQuestionRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type questionPostgres struct {
	db *gorm.DB
}

// questionPostgresが両インターフェースを実装していることをコンパイル時に検証します。
var (
	_ usecase.QuestionRepository = (*questionPostgres)(nil)
	_ usecase.UserDirectory      = (*questionPostgres)(nil)
)

// NewQuestionPostgres は指定されたgorm.DB接続でquestionPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewQuestionPostgres(db *gorm.DB) *questionPostgres {
	return &questionPostgres{db: db}
}

// Create は質問をデータベースに追加します。
func (r *questionPostgres) Create(ctx context.Context, q *entity.Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// FindByID はIDで質問を取得します。
// 質問が存在しない場合、usecase.ErrQuestionNotFoundを返します。
func (r *questionPostgres) FindByID(ctx context.Context, id uint) (*entity.Question, error) {
	var q entity.Question
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

// ListByOwner は所有者の質問を回答状態で絞り込み、質問者のユーザー名を付加して取得します。
// 回答済みリストはcreated_at降順（同時刻はid降順で安定化）、
// 未回答リストは挿入順で返します。
func (r *questionPostgres) ListByOwner(ctx context.Context, ownerID uint, answered bool) ([]entity.AskedQuestion, error) {
	rows := []entity.AskedQuestion{}

	query := r.db.WithContext(ctx).
		Table("questions").
		Select("questions.id, questions.question, questions.answer, questions.is_answered, questions.created_at, users.username AS asker_username").
		Joins("LEFT JOIN users ON users.id = questions.asker_id").
		Where("questions.user_id = ? AND questions.is_answered = ?", ownerID, answered)

	if answered {
		query = query.Order("questions.created_at DESC, questions.id DESC")
	} else {
		query = query.Order("questions.id ASC")
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetAnswer は回答テキストとisAnsweredフラグを単一のUPDATE文で設定します。
// 質問が存在しない場合、usecase.ErrQuestionNotFoundを返します。
func (r *questionPostgres) SetAnswer(ctx context.Context, id uint, answer string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Question{}).
		Where("id = ?", id).
		Updates(map[string]any{"answer": answer, "is_answered": true})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrQuestionNotFound
	}
	return nil
}

// Delete は質問をデータベースから完全に削除します。
// 質問が存在しない場合、usecase.ErrQuestionNotFoundを返します。
func (r *questionPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrQuestionNotFound
	}
	return nil
}

// ResolveUsername はユーザー名をユーザーIDに解決します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *questionPostgres) ResolveUsername(ctx context.Context, username string) (uint, error) {
	var row struct{ ID uint }
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id").
		Where("username = ?", username).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, usecase.ErrUserNotFound
		}
		return 0, err
	}
	return row.ID, nil
}
