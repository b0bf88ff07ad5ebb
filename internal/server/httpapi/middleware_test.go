package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/usersapi/internal/common"
	"github.com/dmitrijs2005/usersapi/internal/logging"
	"github.com/dmitrijs2005/usersapi/internal/server/auth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthGate(t *testing.T) {
	s := newTestServer(t, &fakeLister{})

	valid, err := newTokens(t, time.Now).Issue(auth.Identity{UserID: "42", Username: "alice", Role: "admin"})
	require.NoError(t, err)

	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := newTokens(t, past).Issue(auth.Identity{UserID: "42"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		code    int
		message string
	}{
		{name: "missing", header: "", code: http.StatusUnauthorized, message: msgNoToken},
		{name: "wrong scheme", header: "Basic abc", code: http.StatusUnauthorized, message: msgNoToken},
		{name: "empty bearer", header: "Bearer ", code: http.StatusUnauthorized, message: msgNoToken},
		{name: "garbage", header: "Bearer not.a.jwt", code: http.StatusUnauthorized, message: msgInvalidToken},
		{name: "expired", header: "Bearer " + expired, code: http.StatusUnauthorized, message: msgInvalidToken},
		{name: "valid", header: "Bearer " + valid, code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			rec := serve(s, r)

			require.Equal(t, tt.code, rec.Code)
			if tt.message != "" {
				assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tt.message), rec.Body.String())
			}
		})
	}
}

func TestAuthGate_AttachesIdentity(t *testing.T) {
	s := newTestServer(t, &fakeLister{})
	want := auth.Identity{UserID: "42", Username: "alice", Role: "admin"}
	token, err := newTokens(t, time.Now).Issue(want)
	require.NoError(t, err)

	var got auth.Identity
	var ok bool
	h := s.authGate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = auth.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), r)

	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestMe_ReturnsIdentity(t *testing.T) {
	s := newTestServer(t, &fakeLister{})
	token, err := newTokens(t, time.Now).Issue(auth.Identity{UserID: "7", Username: "bob"})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	rec := serve(s, r)

	require.Equal(t, http.StatusOK, rec.Code)
	var body auth.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, auth.Identity{UserID: "7", Username: "bob"}, body)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, &fakeLister{})

	t.Run("generated", func(t *testing.T) {
		var seen string
		h := s.requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.GetReqID(r.Context())
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(common.RequestIDHeaderName))
	})

	t.Run("propagated", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.Header.Set(common.RequestIDHeaderName, "abc-123")
		rec := serve(s, r)

		assert.Equal(t, "abc-123", rec.Header().Get(common.RequestIDHeaderName))
	})
}

func TestRecoverer(t *testing.T) {
	s := newTestServer(t, &fakeLister{})
	s.users = panicLister{}

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"message":"Internal server error."}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(common.RequestIDHeaderName))
}

func TestRecoverer_LogsWrappedInternalError(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(t, &fakeLister{})
	s.logger = logging.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	h := s.recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error."}`, rec.Body.String())
	assert.Contains(t, buf.String(), "handler panicked")
	assert.Contains(t, buf.String(), common.ErrorInternal.Error()+": panic: boom")
}

func TestRecoverer_RepanicsOnAbort(t *testing.T) {
	s := newTestServer(t, &fakeLister{})

	h := s.recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
