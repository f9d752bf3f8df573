package tenant_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-kafe/internal/middleware"
	"go-kafe/internal/tenant"
	tenanterrors "go-kafe/internal/tenant/errors"
	tenantMock "go-kafe/internal/tenant/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupPublicRouter(svc tenant.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := tenant.NewHandler(svc)
	r.GET("/public/:slug", tenant.PublicTenantMiddleware(svc), h.GetPublic)
	return r
}

func TestHandler_GetPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := tenantMock.NewMockService(ctrl)
	router := setupPublicRouter(mockService)
	kafe := &tenant.Tenant{ID: uuid.New(), Name: "Kopi Baru", Slug: "kopi-baru", DailyToken: "4321"}

	t.Run("never leaks the daily token", func(t *testing.T) {
		mockService.EXPECT().ResolveBySlug(gomock.Any(), "kopi-baru").
			Return(tenant.Resolution{Tenant: kafe, Canonical: true}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/kopi-baru", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "4321")
		assert.NotContains(t, w.Body.String(), "daily_token")
		assert.Empty(t, w.Header().Get(tenant.CanonicalSlugHeader))
	})

	t.Run("historic slug advertises the canonical one", func(t *testing.T) {
		mockService.EXPECT().ResolveBySlug(gomock.Any(), "kopi-lama").
			Return(tenant.Resolution{Tenant: kafe, Canonical: false}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/kopi-lama", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "kopi-baru", w.Header().Get(tenant.CanonicalSlugHeader))

		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, false, res["data"].(map[string]any)["canonical"])
	})

	t.Run("unknown tenant", func(t *testing.T) {
		mockService.EXPECT().ResolveBySlug(gomock.Any(), "ghost").
			Return(tenant.Resolution{}, tenanterrors.ErrTenantNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/ghost", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		mockService.EXPECT().ResolveBySlug(gomock.Any(), "kopi-baru").
			Return(tenant.Resolution{}, tenanterrors.ErrTenantLoadFailed.WithCause(errors.New("timeout")))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/kopi-baru", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := tenantMock.NewMockService(ctrl)
	h := tenant.NewHandler(mockService)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/tenants", h.Create)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), tenant.CreateTenantRequest{Name: "Kopi Kenangan"}).
			Return(tenant.TenantResponse{ID: "t-1", Slug: "kopi-kenangan"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewBufferString(`{"name":"Kopi Kenangan"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "kopi-kenangan")
	})

	t.Run("missing name", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("slug taken", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(tenant.TenantResponse{}, tenanterrors.ErrTenantSlugTaken)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewBufferString(`{"name":"Kopi Kenangan"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_RotateDailyToken_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := tenantMock.NewMockService(ctrl)
	h := tenant.NewHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/daily-token", nil)
	c.Set(middleware.CtxTenant, "tenant-1")

	mockService.EXPECT().RotateDailyToken(gomock.Any(), "tenant-1", tenant.RotateDailyTokenRequest{}).
		Return(tenant.TenantResponse{DailyToken: "9090"}, nil)

	h.RotateDailyToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
