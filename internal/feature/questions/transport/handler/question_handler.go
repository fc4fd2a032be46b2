// Package handler はquestionsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"askbox_backend/internal/feature/questions/domain/entity"
	"askbox_backend/internal/feature/questions/transport/http/dto"
	"askbox_backend/internal/feature/questions/usecase"
	jwtmw "askbox_backend/internal/platform/jwt"
)

// QuestionsUsecase は質問ライフサイクル操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type QuestionsUsecase interface {
	// Ask は指定されたユーザー名の受信箱に新しい質問を投稿します。
	Ask(ctx context.Context, askerID uint, targetUsername, text string) error
	// ListPending は所有者の未回答の質問を取得します。
	ListPending(ctx context.Context, ownerID uint) ([]entity.AskedQuestion, error)
	// ListAnsweredByUsername は指定ユーザーの回答済みの質問をcreated_at降順で取得します。
	ListAnsweredByUsername(ctx context.Context, username string) ([]entity.AskedQuestion, error)
	// Answer は質問に回答し、リクエスターの最新の未回答リストを返します。
	Answer(ctx context.Context, questionID, requesterID uint, text string) ([]entity.AskedQuestion, error)
	// Delete は質問を削除し、リクエスターの最新の未回答リストを返します。
	Delete(ctx context.Context, questionID, requesterID uint) ([]entity.AskedQuestion, error)
}

// QuestionHandler は質問操作のHTTPリクエストを処理します。
// 認証必須のルートでは、jwtmw.AuthRequiredがコンテキストに格納した
// プロフィールからリクエスターを特定します。
type QuestionHandler struct {
	questions QuestionsUsecase
}

// NewQuestionHandler はQuestionHandlerの新しいインスタンスを生成します。
func NewQuestionHandler(questions QuestionsUsecase) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// Post は質問投稿APIエンドポイントを処理します。
// - 認証必須（質問は所有者には匿名だが、投稿者はサインイン済みユーザー）
// - 宛先ユーザーが存在しない場合は404を返却
// - 成功時は確認メッセージを返却（投稿者の身元は応答に含まれない）
func (h *QuestionHandler) Post(c *gin.Context) {
	asker, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You need to be signed in to post a question"})
		return
	}

	var req dto.PostQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("post question validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.questions.Ask(c.Request.Context(), asker.ID, req.Username, req.Question); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found!"})
			return
		}
		slog.Error("post question failed", "error", err, "asker_id", asker.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question successfully asked!"})
}

// ListPending は自分宛ての未回答の質問一覧APIエンドポイントを処理します。
// 認証必須で、呼び出し元自身の質問のみを返します。
func (h *QuestionHandler) ListPending(c *gin.Context) {
	owner, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Only signed in users can see their questions"})
		return
	}

	questions, err := h.questions.ListPending(c.Request.Context(), owner.ID)
	if err != nil {
		slog.Error("list pending questions failed", "error", err, "owner_id", owner.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, questions)
}

// ListAnswered は公開の回答済み質問一覧APIエンドポイントを処理します。
// 認証不要で、created_at降順（最新順）で返します。
func (h *QuestionHandler) ListAnswered(c *gin.Context) {
	username := c.Param("username")

	questions, err := h.questions.ListAnsweredByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found!"})
			return
		}
		slog.Error("list answered questions failed", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, questions)
}

// Answer は質問回答APIエンドポイントを処理します。
// - 質問が存在しない場合は404を返却
// - 回答テキストが空の場合は400を返却
// - リクエスターが所有者でない場合は401を返却
// - 成功時は最新の未回答リストを返却
func (h *QuestionHandler) Answer(c *gin.Context) {
	requester, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Only signed in users can answer their questions"})
		return
	}

	questionID, err := parseQuestionID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found!"})
		return
	}

	var req dto.AnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer is required"})
		return
	}

	pending, err := h.questions.Answer(c.Request.Context(), questionID, requester.ID, req.Answer)
	if err != nil {
		h.writeMutationError(c, err, "answer question", requester.ID)
		return
	}

	c.JSON(http.StatusOK, pending)
}

// Delete は質問削除APIエンドポイントを処理します。
// 所有者チェックはAnswerと同じ規則に従い、成功時は最新の未回答リストを返却します。
func (h *QuestionHandler) Delete(c *gin.Context) {
	requester, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Only signed in users can delete their questions"})
		return
	}

	questionID, err := parseQuestionID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found!"})
		return
	}

	pending, err := h.questions.Delete(c.Request.Context(), questionID, requester.ID)
	if err != nil {
		h.writeMutationError(c, err, "delete question", requester.ID)
		return
	}

	c.JSON(http.StatusOK, pending)
}

// writeMutationError は質問の変更操作のエラーをHTTPレスポンスに変換します。
// 所有者不一致（Forbidden）は認証失敗と区別されたメッセージで返します。
func (h *QuestionHandler) writeMutationError(c *gin.Context, err error, op string, requesterID uint) {
	switch {
	case errors.Is(err, usecase.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found!"})
	case errors.Is(err, usecase.ErrEmptyAnswer):
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer must not be empty"})
	case errors.Is(err, usecase.ErrNotOwner):
		slog.Warn("ownership check failed", "op", op, "requester_id", requesterID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you are not the owner of this question"})
	default:
		slog.Error(op+" failed", "error", err, "requester_id", requesterID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseQuestionID はパスパラメータの質問IDを解析します。
func parseQuestionID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
