package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-kafe/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader   = "Idempotency-Key"
	ctxIdempCacheKey    = "idempotency_cache_key"
	ctxIdempLockKey     = "idempotency_lock_key"
	ctxIdempKey         = "idempotency_key"
	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

type cachedResponse struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency replays the stored response of a POST that already
// succeeded with the same Idempotency-Key, and rejects a duplicate that
// arrives while the first one is still running. When required is true a
// POST without the header is rejected.
func Idempotency(rdb *redis.Client, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		idempKey := c.GetHeader(IdempotencyHeader)
		if idempKey == "" {
			if required {
				response.AbortError(c, http.StatusBadRequest, "IDEMPOTENCY_KEY_REQUIRED", "Idempotency-Key header is required", nil)
				return
			}
			c.Next()
			return
		}
		c.Set(ctxIdempKey, idempKey)

		if rdb == nil {
			c.Next()
			return
		}

		owner := c.GetString(CtxUserID)
		if owner == "" {
			owner = "ip:" + c.ClientIP()
		}
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), owner, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached cachedResponse
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Header("Idempotent-Replayed", "true")
				c.AbortWithStatusJSON(cached.Status, response.ApiEnvelope{Ok: true, Data: cached.Data})
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			zap.L().Named("middleware.idempotency").Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.AbortError(c, http.StatusConflict, "PROCESSING", "Request is already being processed, please wait", nil)
			return
		}

		c.Set(ctxIdempCacheKey, cacheKey)
		c.Set(ctxIdempLockKey, lockKey)

		c.Next()

		// the lock only guards the in-flight window
		_ = rdb.Del(context.WithoutCancel(ctx), lockKey).Err()
	}
}

// IdempotencyKey returns the client supplied key, if any.
func IdempotencyKey(c *gin.Context) string {
	return c.GetString(ctxIdempKey)
}

// StoreIdempotentResponse remembers a successful response so a retry with
// the same key gets it back unchanged.
func StoreIdempotentResponse(c *gin.Context, rdb *redis.Client, status int, data any) {
	cacheKey := c.GetString(ctxIdempCacheKey)
	if rdb == nil || cacheKey == "" {
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	payload, err := json.Marshal(cachedResponse{Status: status, Data: raw})
	if err != nil {
		return
	}
	_ = rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyCacheTTL).Err()
}
