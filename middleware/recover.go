package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Recover turns a panic in a handler into a 500 response and logs it.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					var err error
					switch x := rec.(type) {
					case error:
						err = x
					case string:
						err = errors.New(x)
					default:
						err = fmt.Errorf("unknown panic: %v", x)
					}
					logger.Error("Recovered from panic", zap.String("path", r.URL.Path), zap.Error(err))
					http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
