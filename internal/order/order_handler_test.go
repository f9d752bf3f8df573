package order_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-kafe/internal/middleware"
	"go-kafe/internal/order"
	ordererrors "go-kafe/internal/order/errors"
	orderMock "go-kafe/internal/order/mock"
	"go-kafe/internal/tenant"
	tenantMock "go-kafe/internal/tenant/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	tenants := tenantMock.NewMockService(ctrl)
	svc := orderMock.NewMockService(ctrl)
	kafe := &tenant.Tenant{ID: uuid.New(), Name: "Kopi", Slug: "kopi", DailyToken: "5678"}

	r := gin.New()
	h := order.NewHandler(svc, nil)
	r.POST("/public/:slug/tables/:tableId/orders", tenant.PublicTenantMiddleware(tenants), h.Checkout)

	body := func(v any) *bytes.Reader {
		raw, _ := json.Marshal(v)
		return bytes.NewReader(raw)
	}
	valid := map[string]any{
		"items":              []map[string]any{{"menu_id": uuid.NewString(), "quantity": 1}},
		"payment_method":     "qris",
		"verification_token": "1234",
	}

	t.Run("token mismatch is a field error", func(t *testing.T) {
		tenants.EXPECT().ResolveBySlug(gomock.Any(), "kopi").Return(tenant.Resolution{Tenant: kafe, Canonical: true}, nil)
		svc.EXPECT().Checkout(gomock.Any(), kafe, "t-1", gomock.Any()).Return(order.OrderResponse{}, ordererrors.ErrInvalidVerificationToken)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/public/kopi/tables/t-1/orders", body(valid)))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		details := res["error"].(map[string]any)["details"].(map[string]any)
		assert.Equal(t, "verification_token", details["field"])
	})

	t.Run("empty cart never reaches the service", func(t *testing.T) {
		tenants.EXPECT().ResolveBySlug(gomock.Any(), "kopi").Return(tenant.Resolution{Tenant: kafe, Canonical: true}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/public/kopi/tables/t-1/orders",
			body(map[string]any{"items": []any{}, "payment_method": "cash"})))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		tenants.EXPECT().ResolveBySlug(gomock.Any(), "kopi").Return(tenant.Resolution{Tenant: kafe, Canonical: true}, nil)
		svc.EXPECT().Checkout(gomock.Any(), kafe, "t-1", gomock.Any()).Return(order.OrderResponse{ID: "o-1", TotalAmount: 22123}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/public/kopi/tables/t-1/orders", body(valid)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "22123")
	})
}

func TestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := orderMock.NewMockService(ctrl)

	r := gin.New()
	h := order.NewHandler(svc, nil)
	r.PATCH("/orders/:id/status", func(c *gin.Context) {
		c.Set(middleware.CtxTenant, "tenant-1")
		c.Set(middleware.CtxUserID, "staff-1")
		c.Next()
	}, h.UpdateStatus)

	t.Run("passes the acting admin", func(t *testing.T) {
		svc.EXPECT().UpdateStatus(gomock.Any(), "tenant-1", "staff-1", "o-1",
			order.UpdateStatusRequest{Status: order.StatusCancelled, Reason: "habis"}).
			Return(order.OrderResponse{ID: "o-1", Status: order.StatusCancelled}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/orders/o-1/status",
			bytes.NewBufferString(`{"status":"cancelled","reason":"habis"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("backward move", func(t *testing.T) {
		svc.EXPECT().UpdateStatus(gomock.Any(), "tenant-1", "staff-1", "o-1", gomock.Any()).
			Return(order.OrderResponse{}, ordererrors.ErrInvalidStatusTransition)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/orders/o-1/status",
			bytes.NewBufferString(`{"status":"received"}`)))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/orders/o-1/status",
			bytes.NewBufferString(`{"status":"eaten"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
