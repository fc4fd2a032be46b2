// Package dto はquestionsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// PostQuestionReq は/questionsエンドポイントのリクエストボディを表します。
// 宛先はユーザー名で指定します。
type PostQuestionReq struct {
	Question string `json:"question" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// AnswerReq はPATCH /questions/:idエンドポイントのリクエストボディを表します。
type AnswerReq struct {
	Answer string `json:"answer" binding:"required"`
}
