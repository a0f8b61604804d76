package middleware

import (
	"net/http"

	"pet-adoption/internal/platform/logger"

	"go.uber.org/zap"
)

// Recover reemplaza chimw.Recoverer para que el panic quede en el log
// estructurado con el request_id del contexto.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}
			logger.Get(r.Context()).Error("captured panic", zap.Any("panic", p), zap.Stack("stack"))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
