package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/usersapi/internal/server/auth"
)

const msgInternal = "Internal server error."

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	w.Header().Set("Access-Control-Allow-Origin", "*")

	params, fallbacks := parseListParams(r)
	if len(fallbacks) > 0 {
		s.logger.Warn(ctx, "malformed listing parameters, using defaults", "params", fallbacks, "query", r.URL.RawQuery)
	}

	listing, err := s.users.ListUsers(ctx, params)
	if err != nil {
		s.logger.Error(ctx, "list users failed", "error", err)
		s.writeJSON(ctx, w, http.StatusInternalServerError, messageResponse{Message: msgInternal})
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, listing)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := auth.FromContext(ctx)
	if !ok {
		s.writeJSON(ctx, w, http.StatusUnauthorized, messageResponse{Message: msgNoToken})
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, identity)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(ctx, "response encoding failed", "error", err)
	}
}
