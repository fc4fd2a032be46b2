// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignUpReq represents the request body for the /sign-up endpoint.
// It uses Gin's binding tags for validation (required fields, email format).
type SignUpReq struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Image    string `json:"image"`
}
