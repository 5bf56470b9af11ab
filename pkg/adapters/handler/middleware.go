package handler

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/config"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// clientIdleTTL is how long an idle client keeps its rate limiter
const clientIdleTTL = 3 * time.Minute

type Middleware struct {
	logger  *zap.Logger
	limiter *clientLimiter // nil when rate limiting is disabled
}

func NewMiddleware(cfg *config.Config, logger *zap.Logger) *Middleware {
	m := &Middleware{logger: logger}
	if cfg.RateLimit.RPS > 0 {
		m.limiter = newClientLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst, clientIdleTTL)
	}
	return m
}

// Chain wraps next with request logging, panic recovery and rate limiting, outermost first.
func (m *Middleware) Chain(next http.Handler) http.Handler {
	return m.Logging(m.Recover(m.RateLimit(next)))
}

// Logging writes one line per request and tags it with an X-Request-ID.
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Recover turns a panic into a 500 JSON response.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				m.logger.Error("panic recovered",
					zap.String("path", r.URL.Path),
					zap.Any("panic", v),
					zap.Stack("stack"),
				)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Message: "Internal server error",
					Error:   fmt.Sprint(v),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RateLimit answers 429 once a client IP exceeds its token bucket.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	if m.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.allow(clientIP(r)) {
			writeJSON(w, http.StatusTooManyRequests, ErrorResponse{
				Message: "Too many requests",
				Error:   "rate limit exceeded",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newClientLimiter(limit rate.Limit, burst int, ttl time.Duration) *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (l *clientLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.ttl {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > l.ttl {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// clientIP prefers the first X-Forwarded-For hop (set by the Vercel proxy).
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
