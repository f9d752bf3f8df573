package middleware

import (
	"errors"
	"strings"

	autherrors "go-kafe/internal/auth/errors"
	"go-kafe/internal/auth/token"
	"go-kafe/internal/shared/apperror"
	"go-kafe/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID  = "user_id"
	CtxEmail   = "email"
	CtxRole    = "role"
	CtxTenant  = "tenant_id"
	cookieName = "access_token"
)

// AuthMiddleware authenticates the caller from a Bearer header or the
// access_token cookie. It only establishes identity; roles are decided by
// the access gate.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(cookieName); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			e := autherrors.ErrTokenNotFound
			response.AbortError(c, e.HTTPStatus, e.Code, e.Message, nil)
			return
		}

		claims, err := token.Parse(secret, tokenString, token.TypeAccess)
		if err != nil {
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				appErr = autherrors.ErrInvalidToken
			}
			response.AbortError(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Next()
	}
}

// OptionalAuth reads a token when one is present and never rejects.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			tokenString, _ = c.Cookie(cookieName)
		}
		if tokenString != "" {
			if claims, err := token.Parse(secret, tokenString, token.TypeAccess); err == nil {
				c.Set(CtxUserID, claims.UserID)
				c.Set(CtxEmail, claims.Email)
			}
		}
		c.Next()
	}
}
