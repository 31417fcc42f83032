package backend

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/julianstephens/moodpet/internal/backend/store"
)

type ctxKey int

const userKey ctxKey = iota

// userFrom returns the user authenticated by requireAuth
func userFrom(ctx context.Context) (store.User, bool) {
	u, ok := ctx.Value(userKey).(store.User)
	return u, ok
}

// statusRecorder captures the status code for metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// recoverer turns handler panics into a 500
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("Panic recovered",
					"panic", rec,
					"method", r.Method,
					"url", r.URL.String(),
					"stack", string(debug.Stack()))
				WriteError(w, http.StatusInternalServerError, "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// instrument records request counts and latency per route template
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unmatched"
		if cr := mux.CurrentRoute(r); cr != nil {
			if tpl, err := cr.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		requestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		s.log.Debug("Request", "method", r.Method, "route", route, "status", rec.status, "elapsed", elapsed)
	})
}

// requireAuth resolves the bearer token to a user. When an API key is
// configured the apikey header must match it as well.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get("apikey")), []byte(s.apiKey)) != 1 {
			authFailuresTotal.Inc()
			WriteError(w, http.StatusUnauthorized, "invalid api key")
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			authFailuresTotal.Inc()
			WriteError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		u, err := s.store.UserByToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				authFailuresTotal.Inc()
				WriteError(w, http.StatusUnauthorized, "unknown token")
				return
			}
			s.log.Error("Token lookup failed", "error", err)
			WriteError(w, http.StatusInternalServerError, "")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "bearer "
	h := r.Header.Get("Authorization")
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(h[len(prefix):])
	return token, token != ""
}
