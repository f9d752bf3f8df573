package tenant

import (
	"go-kafe/internal/middleware"
	"go-kafe/internal/shared/apperror"
	"go-kafe/internal/shared/contextutil"
	"go-kafe/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	ctxPublicTenant     = "public_tenant"
	CanonicalSlugHeader = "X-Canonical-Slug"
)

// PublicTenantMiddleware resolves :slug for customer routes. A historic
// slug keeps working so printed QR codes survive a rename; the canonical
// slug is advertised in a response header.
func PublicTenantMiddleware(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.ResolveBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.AbortError(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			return
		}

		if !res.Canonical {
			c.Header(CanonicalSlugHeader, res.Tenant.Slug)
		}

		tenantID := res.Tenant.ID.String()
		c.Set(ctxPublicTenant, res)
		c.Set(middleware.CtxTenant, tenantID)
		c.Request = c.Request.WithContext(contextutil.WithTenantID(c.Request.Context(), tenantID))
		c.Next()
	}
}

func PublicFrom(c *gin.Context) (Resolution, bool) {
	v, ok := c.Get(ctxPublicTenant)
	if !ok {
		return Resolution{}, false
	}
	res, ok := v.(Resolution)
	if !ok || res.Tenant == nil {
		return Resolution{}, false
	}
	return res, true
}
