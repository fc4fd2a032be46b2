package dto

// SignInReq は/sign-inエンドポイントのリクエストボディを表します。
type SignInReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
