package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-reservation/internal/config"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		TTL:         time.Minute,
		KeyStrategy: "route_query",
		Prefix:      "hotel-cache",
	}
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRedisCache_MissThenHit(t *testing.T) {
	mr, rdb := newTestRedis(t)
	calls := 0
	e := echo.New()
	e.GET("/v1/hotels/:id", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, echo.Map{"hotel_id": c.Param("id"), "calls": calls})
	}, NewRedisCache(testCacheConfig(), rdb))

	first := serve(e, http.MethodGet, "/v1/hotels/1")
	if first.Code != http.StatusOK || first.Header().Get("X-Cache") != "MISS" {
		t.Fatalf("first GET: %d X-Cache=%q", first.Code, first.Header().Get("X-Cache"))
	}
	second := serve(e, http.MethodGet, "/v1/hotels/1")
	if second.Code != http.StatusOK || second.Header().Get("X-Cache") != "HIT" {
		t.Fatalf("second GET: %d X-Cache=%q", second.Code, second.Header().Get("X-Cache"))
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, expected 1", calls)
	}
	if second.Body.String() != first.Body.String() {
		t.Fatalf("cached body differs: %q vs %q", second.Body.String(), first.Body.String())
	}
	if ct := second.Header().Get(echo.HeaderContentType); ct != first.Header().Get(echo.HeaderContentType) {
		t.Fatalf("content type not replayed: %q", ct)
	}
	if n := len(mr.Keys()); n != 1 {
		t.Fatalf("expected 1 cached entry, got %d", n)
	}

	if rec := serve(e, http.MethodGet, "/v1/hotels/2"); rec.Header().Get("X-Cache") != "MISS" {
		t.Fatalf("other hotel served from cache: %q", rec.Header().Get("X-Cache"))
	}
}

func TestRedisCache_DoesNotStoreNon200(t *testing.T) {
	mr, rdb := newTestRedis(t)
	calls := 0
	e := echo.New()
	e.GET("/v1/hotels/:id", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
	}, NewRedisCache(testCacheConfig(), rdb))

	for i := 0; i < 2; i++ {
		rec := serve(e, http.MethodGet, "/v1/hotels/9")
		if rec.Code != http.StatusNotFound || rec.Header().Get("X-Cache") != "MISS" {
			t.Fatalf("request %d: %d X-Cache=%q", i, rec.Code, rec.Header().Get("X-Cache"))
		}
	}
	if calls != 2 {
		t.Fatalf("expected handler to run twice, ran %d", calls)
	}
	if keys := mr.Keys(); len(keys) != 0 {
		t.Fatalf("404 response was cached: %v", keys)
	}
}

func TestPurgeCacheOnWrite(t *testing.T) {
	mr, rdb := newTestRedis(t)
	cfg := testCacheConfig()
	name := "Example Hotel"
	e := echo.New()
	e.GET("/v1/hotels/:id", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"name": name})
	}, NewRedisCache(cfg, rdb))
	e.PATCH("/v1/hotels/:id", func(c echo.Context) error {
		if c.QueryParam("fail") != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
		}
		name = "Renamed"
		return c.JSON(http.StatusOK, echo.Map{"name": name})
	}, PurgeCacheOnWrite(cfg, rdb))
	mr.Set("unrelated", "keep")

	serve(e, http.MethodGet, "/v1/hotels/1")
	if rec := serve(e, http.MethodGet, "/v1/hotels/1"); rec.Header().Get("X-Cache") != "HIT" {
		t.Fatalf("expected warm cache, got %q", rec.Header().Get("X-Cache"))
	}

	if rec := serve(e, http.MethodPatch, "/v1/hotels/1?fail=1"); rec.Code != http.StatusBadRequest {
		t.Fatalf("failing write: %d", rec.Code)
	}
	if rec := serve(e, http.MethodGet, "/v1/hotels/1"); rec.Header().Get("X-Cache") != "HIT" {
		t.Fatalf("failed write purged the cache")
	}

	if rec := serve(e, http.MethodPatch, "/v1/hotels/1"); rec.Code != http.StatusOK {
		t.Fatalf("write: %d", rec.Code)
	}
	rec := serve(e, http.MethodGet, "/v1/hotels/1")
	if rec.Header().Get("X-Cache") != "MISS" {
		t.Fatalf("expected MISS after write, got %q", rec.Header().Get("X-Cache"))
	}
	if rec.Body.String() != "{\"name\":\"Renamed\"}\n" {
		t.Fatalf("stale body after purge: %q", rec.Body.String())
	}
	if !mr.Exists("unrelated") {
		t.Fatalf("purge removed a key outside the cache prefix")
	}
}

func TestTokenBucket_RejectsWhenExhausted(t *testing.T) {
	_, rdb := newTestRedis(t)
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            10 * time.Minute,
		KeyStrategy:    "ip",
		Prefix:         "hotel-rl",
	}
	e := echo.New()
	e.GET("/v1/hotels", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, NewTokenBucket(cfg, rdb))

	from := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/hotels", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	for i, wantRemaining := range []string{"1", "0"} {
		rec := from("10.0.0.1")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "2" || rec.Header().Get("X-RateLimit-Remaining") != wantRemaining {
			t.Fatalf("request %d: headers %v", i, rec.Header())
		}
	}

	rec := from("10.0.0.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once capacity is spent, got %d", rec.Code)
	}
	retry, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	if err != nil || retry <= 0 || retry > 60 {
		t.Fatalf("unexpected Retry-After %q", rec.Header().Get("Retry-After"))
	}

	if rec := from("10.0.0.2"); rec.Code != http.StatusOK {
		t.Fatalf("another client was limited: %d", rec.Code)
	}
}
