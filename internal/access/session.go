package access

import (
	"go-kafe/internal/tenant"

	"github.com/gin-gonic/gin"
)

const ctxSession = "access_session"

// Session is what an authorized request carries into handlers. Tenant is
// nil for super admin sessions.
type Session struct {
	Identity Identity
	Tenant   *tenant.Tenant
	Role     string
}

func (s Session) TenantID() string {
	if s.Tenant == nil {
		return ""
	}
	return s.Tenant.ID.String()
}

func SessionFrom(c *gin.Context) (Session, bool) {
	v, ok := c.Get(ctxSession)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
