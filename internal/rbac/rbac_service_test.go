package rbac

import (
	"testing"

	"go-kafe/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	policy, err := DefaultPolicy()
	assert.NoError(t, err)

	svc, err := NewService(enforcer, policy, zap.NewNop())
	assert.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		req  EnforceRequest
		want bool
	}{
		{"superadmin manages tenants", EnforceRequest{"superadmin", "tenant", "create"}, true},
		{"superadmin provisions admins", EnforceRequest{"superadmin", "admin_user", "create"}, true},
		{"superadmin has no menu access", EnforceRequest{"superadmin", "menu", "update"}, false},
		{"admin edits menu", EnforceRequest{"admin_kafe", "menu", "update"}, true},
		{"admin updates order", EnforceRequest{"admin_kafe", "order", "update"}, true},
		{"admin cannot delete order", EnforceRequest{"admin_kafe", "order", "delete"}, false},
		{"admin cannot create tenant", EnforceRequest{"admin_kafe", "tenant", "create"}, false},
		{"empty role", EnforceRequest{"", "menu", "read"}, false},
		{"unknown role", EnforceRequest{"cashier", "menu", "read"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tt.req)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy([]byte(`
roles:
  admin_kafe:
    report: [read]
    menu: [update, read]
`))
	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		{"admin_kafe", "menu", "read"},
		{"admin_kafe", "menu", "update"},
		{"admin_kafe", "report", "read"},
	}, p.Rules())

	_, err = ParsePolicy([]byte("roles: {}"))
	assert.Error(t, err)

	_, err = ParsePolicy([]byte("roles: ["))
	assert.Error(t, err)
}
