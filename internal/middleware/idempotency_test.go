package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-kafe/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("required key missing", func(t *testing.T) {
		r := gin.New()
		r.POST("/orders", middleware.Idempotency(nil, true), func(c *gin.Context) { c.Status(http.StatusCreated) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("replays stored response", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet("idemp:/orders:ip:192.0.2.1:k1").SetVal(`{"status":201,"data":{"id":"o-1"}}`)

		r := gin.New()
		r.POST("/orders", middleware.Idempotency(db, true), func(c *gin.Context) {
			t.Fatal("handler must not run on replay")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, `{"ok":true,"data":{"id":"o-1"}}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in flight duplicate", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet("idemp:/orders:ip:192.0.2.1:k2").RedisNil()
		mock.ExpectSetNX("idemp:/orders:ip:192.0.2.1:k2:lock", "locked", 30*time.Second).SetVal(false)

		r := gin.New()
		r.POST("/orders", middleware.Idempotency(db, true), func(c *gin.Context) {
			t.Fatal("handler must not run while locked")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k2")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request stores and unlocks", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cacheKey := "idemp:/orders:ip:192.0.2.1:k3"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"status":201,"data":{"id":"o-3"}}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		r := gin.New()
		r.POST("/orders", middleware.Idempotency(db, true), func(c *gin.Context) {
			data := gin.H{"id": "o-3"}
			middleware.StoreIdempotentResponse(c, db, http.StatusCreated, data)
			c.JSON(http.StatusCreated, data)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k3")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GET is ignored", func(t *testing.T) {
		r := gin.New()
		r.GET("/orders", middleware.Idempotency(nil, true), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
