package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dmitrijs2005/usersapi/internal/common"
	"github.com/dmitrijs2005/usersapi/internal/server/auth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	msgNoToken      = "No token provided"
	msgInvalidToken = "Invalid token"
)

// requestID reuses the caller's X-Request-ID or generates one, and exposes
// it through middleware.GetReqID.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeaderName, id)

		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// recoverer turns a handler panic into the same opaque JSON 500 the
// handlers return. Headers the handler already set are kept.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			ctx := r.Context()
			err := fmt.Errorf("%w: panic: %v", common.ErrorInternal, rvr)
			s.logger.Error(ctx, "handler panicked",
				"request_id", middleware.GetReqID(ctx),
				"error", err,
				"stack", string(debug.Stack()),
			)

			if r.Header.Get("Connection") == "Upgrade" {
				return
			}
			s.writeJSON(ctx, w, http.StatusInternalServerError, messageResponse{Message: msgInternal})
		}()

		next.ServeHTTP(w, r)
	})
}

// authGate admits requests carrying a valid bearer token and attaches the
// token's identity to the request context. Callers only ever see one of two
// generic 401 messages.
func (s *Server) authGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := bearerToken(r.Header.Get(common.AuthorizationHeaderName))
		if !ok {
			s.writeJSON(ctx, w, http.StatusUnauthorized, messageResponse{Message: msgNoToken})
			return
		}

		identity, err := s.tokens.Validate(token)
		if err != nil {
			s.logger.Warn(ctx, "token rejected", "cause", auth.FailureCause(err), "error", err)
			s.writeJSON(ctx, w, http.StatusUnauthorized, messageResponse{Message: msgInvalidToken})
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.NewContext(ctx, identity)))
	})
}

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, common.BearerPrefix)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
