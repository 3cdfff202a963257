package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tauqeerkhan/portfolio/internal/analytics"
	"github.com/tauqeerkhan/portfolio/internal/contact"
	"github.com/tauqeerkhan/portfolio/internal/storage"
)

func newTestTracker(t *testing.T) *analytics.Tracker {
	t.Helper()
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tr := analytics.NewTracker(db, "salt", zap.NewNop())
	require.NoError(t, tr.Migrate(context.Background()))
	return tr
}

func login(t *testing.T, srv *Server) *http.Cookie {
	t.Helper()
	form := url.Values{"username": {"admin"}, "password": {"s3cret"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(srv, req)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	for _, c := range rec.Result().Cookies() {
		if c.Name == adminCookie {
			assert.True(t, c.HttpOnly)
			assert.Equal(t, "/admin", c.Path)
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestAdmin_RedirectsWithoutSession(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	for _, path := range []string{"/admin/dashboard", "/admin/visitors", "/admin/messages", "/admin/api/stats"} {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), path)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: "forged"})
	rec := serve(srv, req)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestAdmin_BadCredentials(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(srv, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.Empty(t, rec.Result().Cookies())
}

func TestAdmin_DashboardAndStats(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()
	require.NoError(t, tr.Record(ctx, "10.0.0.1", "test", "/", "developer"))
	require.NoError(t, tr.Record(ctx, "10.0.0.2", "test", "/", "finance"))

	srv, deps := newTestServer(t, func(o *Options) { o.Tracker = tr })
	deps.inbox.messages = []contact.Message{{ID: "1", Name: "Ada", Subject: "Hello", CreatedAt: time.Now()}}
	cookie := login(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	rec := serve(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Top pages")

	req = httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.AddCookie(cookie)
	rec = serve(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 1, stats.Messages)

	req = httptest.NewRequest(http.MethodGet, "/admin/export/stats", nil)
	req.AddCookie(cookie)
	rec = serve(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
}

func TestAdmin_MessagesAndVisitors(t *testing.T) {
	srv, deps := newTestServer(t, nil)
	deps.inbox.messages = []contact.Message{{ID: "1", Name: "Ada", Email: "ada@example.com", Subject: "Engines", Message: "Hello!"}}
	cookie := login(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	req.AddCookie(cookie)
	rec := serve(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Engines")

	req = httptest.NewRequest(http.MethodGet, "/admin/visitors", nil)
	req.AddCookie(cookie)
	rec = serve(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No visits recorded.")
}

func TestAdmin_DeleteVisitorData(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()
	require.NoError(t, tr.Record(ctx, "10.0.0.9", "test", "/", ""))

	srv, _ := newTestServer(t, func(o *Options) { o.Tracker = tr })
	cookie := login(t, srv)

	form := url.Values{"ip": {"10.0.0.9"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/privacy/delete-visitor-data", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := serve(srv, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Deleted int64 `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body.Deleted)
}

func TestAdmin_LogoutClearsCookie(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/admin/logout", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, adminCookie, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAdmin_DisabledWithoutAuth(t *testing.T) {
	srv, _ := newTestServer(t, func(o *Options) { o.Admin = nil })
	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminAuth_IssueVerify(t *testing.T) {
	auth := NewAdminAuth("admin", "pw", []byte("secret"), time.Hour)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	auth.now = func() time.Time { return now }

	token, err := auth.Issue("admin")
	require.NoError(t, err)

	subject, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)

	other := NewAdminAuth("admin", "pw", []byte("other"), time.Hour)
	other.now = auth.now
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	now = now.Add(2 * time.Hour)
	_, err = auth.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestAdminAuth_CheckCredentials(t *testing.T) {
	auth := NewAdminAuth("admin", "pw", []byte("secret"), 0)
	assert.True(t, auth.CheckCredentials("admin", "pw"))
	assert.False(t, auth.CheckCredentials("admin", "PW"))
	assert.False(t, auth.CheckCredentials("", ""))
	assert.Equal(t, 24*time.Hour, auth.TTL())
}
