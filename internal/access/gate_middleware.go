package access

import (
	"net/http"
	"strings"

	"go-kafe/internal/middleware"
	"go-kafe/internal/shared/apperror"
	"go-kafe/internal/shared/contextutil"
	"go-kafe/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const loginPath = "/login"

func identityFrom(c *gin.Context) *Identity {
	uid := c.GetString(middleware.CtxUserID)
	if uid == "" {
		return nil
	}
	return &Identity{UserID: uid, Email: c.GetString(middleware.CtxEmail)}
}

func abortDenied(c *gin.Context, d Decision) {
	details := gin.H{"reason": d.Reason, "redirect": loginPath}
	switch d.Reason {
	case ReasonUnauthenticated:
		e := apperror.ErrUnauthorized
		response.AbortError(c, e.HTTPStatus, e.Code, e.Message, details)
	case ReasonError:
		response.AbortError(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable,
			"Access could not be verified, please try again", details)
	default:
		e := apperror.ErrForbidden
		response.AbortError(c, e.HTTPStatus, e.Code, e.Message, details)
	}
}

func authorize(c *gin.Context, identity *Identity, d Decision) {
	s := Session{Identity: *identity, Tenant: d.Tenant, Role: d.Role}
	c.Set(ctxSession, s)
	c.Set(middleware.CtxRole, d.Role)

	ctx := c.Request.Context()
	if tid := s.TenantID(); tid != "" {
		c.Set(middleware.CtxTenant, tid)
		ctx = contextutil.WithTenantID(ctx, tid)
	}
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// CanonicalLocation rewrites the tenant segment of an admin path.
func CanonicalLocation(path, rawQuery, oldSlug, newSlug string) string {
	loc := strings.Replace(path, "/kafe/"+oldSlug+"/", "/kafe/"+newSlug+"/", 1)
	if rawQuery != "" {
		loc += "?" + rawQuery
	}
	return loc
}

// TenantAdminGate guards /kafe/:slug/admin routes.
func TenantAdminGate(g *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := identityFrom(c)
		d := g.VerifyTenantAdmin(c.Request.Context(), identity, c.Param("slug"))

		if d.State != Authorized {
			abortDenied(c, d)
			return
		}
		if d.NeedsRedirect() {
			loc := CanonicalLocation(c.Request.URL.Path, c.Request.URL.RawQuery, c.Param("slug"), d.CanonicalSlug)
			c.Redirect(http.StatusPermanentRedirect, loc)
			c.Abort()
			return
		}
		authorize(c, identity, d)
	}
}

func SuperAdminGate(g *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := identityFrom(c)
		d := g.VerifySuperAdmin(c.Request.Context(), identity)
		if d.State != Authorized {
			abortDenied(c, d)
			return
		}
		authorize(c, identity, d)
	}
}
