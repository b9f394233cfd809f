package offline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		url  string
		want Policy
	}{
		{"https://generativelanguage.googleapis.com/v1beta/models", NetworkOnly},
		{"https://fonts.googleapis.com/css2?family=Lora", CacheFirst},
		{"https://fonts.gstatic.com/s/lora/v35/x.woff2", CacheFirst},
		{"https://cdn.tailwindcss.com", CacheFirst},
		{"https://aistudiocdn.com/react@19", CacheFirst},
		{"https://example.com/app.js", StaleWhileRevalidate},
		{"/index.html", StaleWhileRevalidate},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.url), c.url)
	}
}

func TestCacheFirstServesHitWithoutNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/css")
		w.Write([]byte("body{}"))
	}))
	defer srv.Close()

	c := NewCache(srv.Client())
	// The test server is not one of the pinned origins, so exercise the
	// fetch-and-store path directly.
	a, err := c.fetch(context.Background(), srv.URL, true)
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(a.Body))
	assert.Equal(t, "text/css", a.ContentType)

	cached, ok := c.lookup(srv.URL)
	require.True(t, ok)
	assert.Equal(t, a, cached)
	assert.Equal(t, int32(1), hits.Load())
}

func TestErrorResponsesAreNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewCache(srv.Client())
	_, err := c.fetch(context.Background(), srv.URL, true)
	require.Error(t, err)
	assert.False(t, c.Cached(srv.URL))
}

func TestStaleWhileRevalidateServesStaleThenRefreshes(t *testing.T) {
	var version atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if version.Add(1) == 1 {
			w.Write([]byte("v1"))
			return
		}
		w.Write([]byte("v2"))
	}))
	defer srv.Close()

	c := NewCache(srv.Client())

	a, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(a.Body))

	a, err = c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(a.Body), "the stale copy is served immediately")

	require.Eventually(t, func() bool {
		cached, ok := c.lookup(srv.URL)
		return ok && string(cached.Body) == "v2"
	}, time.Second, 10*time.Millisecond, "the background refresh updates the cache")
}

func TestFailedRefreshKeepsStaleCopy(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewCache(srv.Client())
	_, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	fail.Store(true)
	a, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(a.Body))

	time.Sleep(50 * time.Millisecond)
	a, err = c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(a.Body))
}
