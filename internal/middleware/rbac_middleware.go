package middleware

import (
	"net/http"

	"go-kafe/internal/diagnostics"
	"go-kafe/internal/rbac"
	"go-kafe/internal/shared/apperror"
	"go-kafe/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

type DeniedEmitter = diagnostics.Sink

// RBACAuthorize checks the role the access gate put on the context
// against the role policy.
func RBACAuthorize(service RBACService, emitter DeniedEmitter, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role == "" {
			e := apperror.ErrForbidden
			response.AbortError(c, e.HTTPStatus, e.Code, e.Message, nil)
			return
		}

		allowed, err := service.Enforce(rbac.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			e := apperror.ErrInternal
			response.AbortError(c, e.HTTPStatus, e.Code, e.Message, nil)
			return
		}

		if !allowed {
			if emitter != nil {
				emitter.Emit(c.Request.Context(), diagnostics.PermissionDenied{
					Path:      c.FullPath(),
					Operation: resource + ":" + action,
					Payload: map[string]any{
						"role":    role,
						"user_id": c.GetString(CtxUserID),
					},
					Reason: "role policy",
				})
			}
			response.AbortError(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				map[string]string{"required": resource + ":" + action})
			return
		}
		c.Next()
	}
}
