package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/usersapi/internal/logging"
	"github.com/dmitrijs2005/usersapi/internal/server/auth"
	"github.com/dmitrijs2005/usersapi/internal/server/models"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeLister struct {
	listing *models.UserListing
	err     error
	got     models.ListUsersParams
	calls   int
}

func (f *fakeLister) ListUsers(_ context.Context, params models.ListUsersParams) (*models.UserListing, error) {
	f.calls++
	f.got = params
	return f.listing, f.err
}

func newTokens(t *testing.T, now func() time.Time) *auth.TokenService {
	t.Helper()
	ts, err := auth.NewTokenService([]byte(testSecret), time.Hour, auth.WithClock(now))
	require.NoError(t, err)
	return ts
}

func newTestServer(t *testing.T, lister UserLister) *Server {
	t.Helper()
	return NewServer("127.0.0.1:0", logging.Nop{}, lister, newTokens(t, time.Now), nil)
}

func serve(s *Server, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, r)
	return rec
}
