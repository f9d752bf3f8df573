package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-kafe/internal/middleware"
	"go-kafe/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var seen string
	r.GET("/ping", middleware.RequestID(), func(c *gin.Context) {
		seen = contextutil.GetRequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	cases := map[string]struct {
		header string
		keep   bool
	}{
		"keeps a sane id":      {header: "req-42_a.b", keep: true},
		"mints when missing":   {header: ""},
		"replaces log garbage": {header: "x\ninjected=1"},
		"replaces long ids":    {header: strings.Repeat("a", 65)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set(middleware.HeaderRequestID, tc.header)
			}
			r.ServeHTTP(w, req)

			got := w.Header().Get(middleware.HeaderRequestID)
			assert.Equal(t, got, seen)
			if tc.keep {
				assert.Equal(t, tc.header, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}
