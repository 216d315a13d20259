package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"eshop-back/pkg/logger"
	"eshop-back/pkg/response"
)

// Recovery catches panics from downstream handlers, logs the stack trace
// and returns a generic 500. Unhandled persistence failures deliberately
// reach this point rather than being retried or swallowed.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithCtx(r.Context()).Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Internal(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
