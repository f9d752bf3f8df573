package table_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-kafe/internal/middleware"
	"go-kafe/internal/table"
	tableerrors "go-kafe/internal/table/errors"
	tableMock "go-kafe/internal/table/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_QRCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := tableMock.NewMockService(ctrl)

	r := gin.New()
	h := table.NewHandler(svc)
	r.GET("/kafe/:slug/admin/tables/:id/qr.png", func(c *gin.Context) {
		c.Set(middleware.CtxTenant, "tenant-1")
		c.Next()
	}, h.QRCode)

	t.Run("png", func(t *testing.T) {
		svc.EXPECT().QRCode(gomock.Any(), "tenant-1", "kopi", "t-1").Return([]byte("\x89PNG"), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kafe/kopi/admin/tables/t-1/qr.png", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})

	t.Run("unknown table", func(t *testing.T) {
		svc.EXPECT().QRCode(gomock.Any(), "tenant-1", "kopi", "ghost").Return(nil, tableerrors.ErrTableNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kafe/kopi/admin/tables/ghost/qr.png", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
