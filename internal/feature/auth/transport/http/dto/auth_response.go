package dto

import "askbox_backend/internal/feature/auth/domain/entity"

// AuthRes represents the response for a successful sign-up or sign-in:
// the user's public projection plus a fresh session token.
type AuthRes struct {
	User  *entity.Profile `json:"user"`
	Token string          `json:"token"`
}
