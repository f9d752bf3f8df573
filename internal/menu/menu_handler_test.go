package menu_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-kafe/internal/menu"
	menuerrors "go-kafe/internal/menu/errors"
	menuMock "go-kafe/internal/menu/mock"
	"go-kafe/internal/middleware"
	"go-kafe/internal/tenant"
	tenantMock "go-kafe/internal/tenant/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func withTenant(tenantID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxTenant, tenantID)
		c.Next()
	}
}

func TestHandler_PublicMenu(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	tenants := tenantMock.NewMockService(ctrl)
	svc := menuMock.NewMockService(ctrl)
	tables := menuMock.NewMockTableLookup(ctrl)
	kafe := &tenant.Tenant{ID: uuid.New(), Name: "Kopi Baru", Slug: "kopi-baru", DailyToken: "4321"}

	r := gin.New()
	h := menu.NewHandler(svc, tables)
	r.GET("/public/:slug/tables/:tableId/menu", tenant.PublicTenantMiddleware(tenants), h.PublicMenu)

	t.Run("returns table number and sections", func(t *testing.T) {
		tenants.EXPECT().ResolveBySlug(gomock.Any(), "kopi-baru").Return(tenant.Resolution{Tenant: kafe, Canonical: true}, nil)
		tables.EXPECT().TableNumber(gomock.Any(), kafe.ID.String(), "t-1").Return(7, nil)
		svc.EXPECT().PublicCatalog(gomock.Any(), kafe.ID.String()).Return([]menu.CatalogSection{
			{Category: menu.CategoryResponse{ID: "c", Name: "Kopi"}, Menus: []menu.MenuResponse{{ID: "m", Name: "Latte", Price: 22000, Available: true}}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/kopi-baru/tables/t-1/menu", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "4321")

		var res struct {
			Data menu.PublicMenuResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 7, res.Data.TableNumber)
		assert.Len(t, res.Data.Sections, 1)
	})

	t.Run("unknown table", func(t *testing.T) {
		tenants.EXPECT().ResolveBySlug(gomock.Any(), "kopi-baru").Return(tenant.Resolution{Tenant: kafe, Canonical: true}, nil)
		tables.EXPECT().TableNumber(gomock.Any(), kafe.ID.String(), "ghost").Return(0, menuerrors.ErrMenuNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/kopi-baru/tables/ghost/menu", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_CreateMenu(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := menuMock.NewMockService(ctrl)
	tenantID := uuid.NewString()

	r := gin.New()
	h := menu.NewHandler(svc, nil)
	r.POST("/menu", withTenant(tenantID), h.CreateMenu)

	t.Run("created", func(t *testing.T) {
		categoryID := uuid.NewString()
		svc.EXPECT().CreateMenu(gomock.Any(), tenantID, gomock.Any()).Return(menu.MenuResponse{ID: "m-1", Name: "Latte"}, nil)

		body, _ := json.Marshal(map[string]any{"name": "Latte", "price": 22000, "category_id": categoryID})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/menu", bytes.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing category", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{"name": "Latte", "price": 22000})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/menu", bytes.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
