package middleware

import "github.com/gin-gonic/gin"

// Guards bundles the middleware chains route registrations pick from.
// They are built once in app so feature packages never depend on the gate
// implementation.
type Guards struct {
	// Authenticated runs authentication and the request logger.
	Authenticated []gin.HandlerFunc
	// Public runs the request logger only.
	Public []gin.HandlerFunc

	SuperAdmin   gin.HandlerFunc
	TenantAdmin  gin.HandlerFunc
	PublicTenant gin.HandlerFunc
	Idempotency  gin.HandlerFunc
	Authorize    func(resource, action string) gin.HandlerFunc

	// CheckoutLimit throttles anonymous order placement per client IP.
	CheckoutLimit gin.HandlerFunc
}

// Chain appends handlers after the given prefix without aliasing it.
func Chain(prefix []gin.HandlerFunc, more ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(prefix)+len(more))
	out = append(out, prefix...)
	return append(out, more...)
}
