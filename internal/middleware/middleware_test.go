package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iliyamo/cinema-booking/internal/config"
	"github.com/iliyamo/cinema-booking/internal/utils"
)

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func serve(t *testing.T, mw echo.MiddlewareFunc, h echo.HandlerFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, mw(h)(c))
	return rec, c
}

func TestJWTAuth(t *testing.T) {
	tok, err := utils.NewAccessToken("secret", 3, "admin", 5)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid", "Bearer " + tok.Token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec, c := serve(t, JWTAuth("secret"), okHandler, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				id, found := UserID(c)
				assert.True(t, found)
				assert.Equal(t, int64(3), id)
				assert.Equal(t, "admin", c.Get("role"))
			}
		})
	}

	wrong, err := utils.NewAccessToken("other", 3, "admin", 5)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+wrong.Token)
	rec, _ := serve(t, JWTAuth("secret"), okHandler, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole("admin", "staff")
	for role, want := range map[string]int{"staff": http.StatusOK, "ADMIN": http.StatusOK, "member": http.StatusForbidden, "": http.StatusForbidden} {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		if role != "" {
			c.Set("role", role)
		}
		require.NoError(t, mw(okHandler)(c))
		assert.Equal(t, want, rec.Code, role)
	}
}

func TestSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, _ := serve(t, Session(), okHandler, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "not-a-uuid")
	rec, _ = serve(t, Session(), okHandler, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	id := NewSessionID()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, id)
	rec, c := serve(t, Session(), okHandler, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, SessionID(c))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mw := RequestLogger(zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/v1/movies", nil)
	rec, _ := serve(t, mw, okHandler, req)
	rid := rec.Header().Get(echo.HeaderXRequestID)
	assert.NotEmpty(t, rid)

	req = httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc")
	rec, _ = serve(t, mw, func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}, req)
	assert.Equal(t, "abc", rec.Header().Get(echo.HeaderXRequestID))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/v1/movies", entries[0].ContextMap()["path"])
	assert.Equal(t, rid, entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(http.StatusNotFound), entries[1].ContextMap()["status"])
}

func TestTokenBucketLocal(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Hour,
		TTL:            time.Hour,
		KeyStrategy:    "ip",
		Prefix:         "rl",
	}
	mw := NewTokenBucket(cfg, nil, zap.NewNop())
	e := echo.New()
	h := mw(okHandler)

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		return rec
	}

	first := do("192.0.2.1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusOK, do("192.0.2.1").Code)

	blocked := do("192.0.2.1")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEqual(t, "0", blocked.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, do("192.0.2.2").Code, "buckets are per key")
}

func TestTokenBucketDisabled(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil, nil)
	rec, _ := serve(t, mw, okHandler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/booking/date", nil)
	req.RemoteAddr = "192.0.2.9:80"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/booking/date")
	c.Set("session_id", "s1")
	c.Set("user_id", int64(4))

	cfg := config.RateLimitConfig{Prefix: "rl"}
	assert.Equal(t, "rl:ip:192.0.2.9:route:POST /v1/booking/date", buildRateKey(cfg, c))
	cfg.KeyStrategy = "ip_session_route"
	assert.Equal(t, "rl:ip:192.0.2.9:session:s1:route:POST /v1/booking/date", buildRateKey(cfg, c))
	cfg.KeyStrategy = "user"
	assert.Equal(t, "rl:user:4", buildRateKey(cfg, c))
	cfg.KeyStrategy = "session"
	assert.Equal(t, "rl:session:s1", buildRateKey(cfg, c))
}

func TestSessionKeyIgnoresMalformedHeader(t *testing.T) {
	e := echo.New()
	id := NewSessionID()
	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: "none"},
		{header: "junk-1", want: "none"},
		{header: strings.ToUpper(id), want: id},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/v1/movies", nil)
		if tt.header != "" {
			req.Header.Set(SessionHeader, tt.header)
		}
		assert.Equal(t, tt.want, sessionKey(e.NewContext(req, httptest.NewRecorder())), "header %q", tt.header)
	}
}

func TestTokenBucketRotatingSessionHeader(t *testing.T) {
	for _, strategy := range []string{"", "ip_session_route"} {
		t.Run("strategy="+strategy, func(t *testing.T) {
			cfg := config.RateLimitConfig{
				Enabled:        true,
				Capacity:       2,
				RefillTokens:   1,
				RefillInterval: time.Hour,
				TTL:            time.Hour,
				KeyStrategy:    strategy,
				Prefix:         "rl",
			}
			e := echo.New()
			e.Use(NewTokenBucket(cfg, nil, zap.NewNop()))
			e.GET("/v1/movies", okHandler)

			limited := 0
			for i := 0; i < 10; i++ {
				req := httptest.NewRequest(http.MethodGet, "/v1/movies", nil)
				req.RemoteAddr = "192.0.2.7:1234"
				req.Header.Set(SessionHeader, fmt.Sprintf("junk-%d", i))
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, req)
				if rec.Code == http.StatusTooManyRequests {
					limited++
				}
			}
			assert.Equal(t, 8, limited)
		})
	}
}

func TestCachePayload(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`{"a":1}`))
	require.NoError(t, err)

	status, got, body, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, `{"a":1}`, string(body))

	_, _, _, ok = decodePayload(bs[:5])
	assert.False(t, ok)
}

func TestCacheKeyIncludesLocale(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	key := func(target string) string {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
		c.SetPath("/v1/movies")
		return cacheKeyFrom(cfg, c)
	}
	assert.NotEqual(t, key("/v1/movies?locale=en"), key("/v1/movies?locale=vi"))
	assert.Equal(t, key("/v1/movies?locale=vi&x=1"), key("/v1/movies?x=1&locale=vi"))
}

func TestRedisCacheWithoutClient(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}}, nil, nil)
	rec, _ := serve(t, mw, okHandler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}
