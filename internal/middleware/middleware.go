package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/employee-management-api/internal/config"
	"github.com/employee-management-api/internal/faultlog"
	"github.com/google/uuid"
)

// requestIDHeader - заголовок сквозного идентификатора запроса
const requestIDHeader = "X-Request-ID"

// requestIDMaxLen ограничивает длину внешнего идентификатора
const requestIDMaxLen = 64

// responseWriter обёртка для захвата статус-кода
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RequestID middleware читает X-Request-ID из запроса либо генерирует UUID
// и возвращает его в ответе
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		r.Header.Set(requestIDHeader, rid)
		w.Header().Set(requestIDHeader, rid)

		next.ServeHTTP(w, r)
	})
}

// Logger middleware для логирования HTTP запросов
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := newResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			logger.Info("HTTP request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.Int("status", wrapped.statusCode),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("request_id", r.Header.Get(requestIDHeader)),
			)
		})
	}
}

// Recoverer - внешняя граница обработки сбоев. Перехватывает панику,
// сохраняет запись в журнал сбоев и отдаёт безопасный ответ вместо
// утечки внутренностей наружу
func Recoverer(logger *slog.Logger, faults *faultlog.Store, env string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					msg := fmt.Sprint(rec)

					logger.Error("panic recovered",
						slog.Any("error", rec),
						slog.String("path", r.URL.Path),
					)

					// Сбой записи в журнал не должен ронять сам обработчик
					if err := faults.Append(faultlog.Entry{
						Timestamp:   time.Now(),
						Message:     msg,
						Trace:       string(debug.Stack()),
						Path:        r.URL.Path,
						Environment: env,
					}); err != nil {
						logger.Warn("failed to persist fault entry", slog.Any("error", err))
					}

					writeFailure(w, env, msg)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// writeFailure отвечает на необработанный сбой: в development - диагностическая
// страница с текстом ошибки, в остальных режимах - фиксированный ответ без деталей
func writeFailure(w http.ResponseWriter, env, msg string) {
	if env == config.EnvDevelopment {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `<html>
	<body>
		<h1>Something went wrong! (Development)</h1>
		<p>Our team has been notified.</p>
		<p>Exception message: %s</p>
		<a href="/">Go back to Home</a>
	</body>
</html>`, msg)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(`{"error":"internal server error"}`))
}
