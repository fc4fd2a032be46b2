package jwtmw

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"askbox_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the gin context key the authenticated user's public
// profile is stored under.
const ContextUser = "authUser"

// Authenticator resolves a raw bearer token to a user's public profile.
// Following Go convention: the interface is defined by the consumer
// (this middleware), implemented by the auth usecase.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Profile, error)
}

// AuthRequired returns a Gin middleware function that restricts access
// to authenticated users.
//
// The session token travels as the raw Authorization header value, with
// no "Bearer " prefix. An absent header yields an empty token, which is
// still run through verification so every failure path is uniform.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")

		profile, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "you need to be signed in"})
			return
		}

		c.Set(ContextUser, profile)
		c.Next()
	}
}

// CurrentUser returns the authenticated user's profile stored by
// AuthRequired. The second return value is false when the middleware
// did not run on this route.
func CurrentUser(c *gin.Context) (*entity.Profile, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	profile, ok := v.(*entity.Profile)
	return profile, ok
}
