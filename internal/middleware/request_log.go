package middleware

import (
	"context"
	"net/http"
	"time"

	"babylog/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const loggerKey ctxKey = "logger"

// RequestLog deja en el contexto un logger con el request id de chi y
// registra cada request al terminar. Va después de chimw.RequestID.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLog := log.With(map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
			})

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			ctx := context.WithValue(r.Context(), loggerKey, reqLog)
			next.ServeHTTP(ww, r.WithContext(ctx))

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			switch {
			case ww.Status() >= http.StatusInternalServerError:
				reqLog.Error("request", fields)
			case ww.Status() >= http.StatusBadRequest:
				reqLog.Warn("request", fields)
			default:
				reqLog.Info("request", fields)
			}
		})
	}
}

// LoggerFrom devuelve el logger del request; un no-op si no hay.
func LoggerFrom(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey).(logger.Logger); ok && l != nil {
		return l
	}
	return logger.NewNop()
}
