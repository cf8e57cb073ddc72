// Package httpmw holds the middleware every route runs behind: request ids,
// JSON-line access logs and panic recovery.
package httpmw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/raygaledev/gold-starz/internal/logx"
	"github.com/raygaledev/gold-starz/internal/reward"
	"github.com/raygaledev/gold-starz/internal/task"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const requestIDKey contextKey = "goldstarz.request_id"

const (
	requestIDHeader = "X-Request-Id"
	requestIDLength = 16
)

// Chain wraps h so the first middleware is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	if h == nil {
		h = http.NotFoundHandler()
	}
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// WithRequestID keeps an incoming X-Request-Id or mints one.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if rid == "" {
			rid = newRequestID()
		}
		w.Header().Set(requestIDHeader, rid)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, rid)))
	})
}

// Surface names the part of the app a path belongs to.
func Surface(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/"):
		return "api"
	case strings.HasPrefix(path, "/static/"):
		return "static"
	case path == "/healthz" || path == "/readyz":
		return "probe"
	default:
		return "screen"
	}
}

// WithRecover turns a handler panic into an error response. A store used
// after the app closed answers 503; anything else is a 500.
func WithRecover(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				status, msg := http.StatusInternalServerError, "internal server error"
				fields := logx.Fields{
					"request_id": RequestIDFromContext(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      fmt.Sprint(rec),
				}
				if err, ok := rec.(error); ok && (errors.Is(err, task.ErrClosed) || errors.Is(err, reward.ErrClosed)) {
					status, msg = http.StatusServiceUnavailable, "shutting down"
				} else {
					fields["stack"] = string(debug.Stack())
				}
				logx.Error(logger, "panic_recovered", fields)

				if Surface(r.URL.Path) == "api" {
					w.Header().Set("Content-Type", "application/json; charset=utf-8")
					w.WriteHeader(status)
					_ = json.NewEncoder(w).Encode(map[string]any{"error": msg})
					return
				}
				http.Error(w, msg, status)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// WithAccessLog writes one http_request line per request. Run it inside
// WithRequestID so the line carries the id.
func WithAccessLog(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			logx.Info(logger, "http_request", logx.Fields{
				"request_id":  RequestIDFromContext(r.Context()),
				"surface":     Surface(r.URL.Path),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      sw.status,
				"bytes":       sw.bytes,
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_ip":   clientIP(r),
			})
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func newRequestID() string {
	id, err := nanoid.New(requestIDLength)
	if err != nil {
		return fmt.Sprintf("t%d", time.Now().UnixNano())
	}
	return id
}

// clientIP prefers the first X-Forwarded-For hop.
func clientIP(r *http.Request) string {
	if first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ","); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
