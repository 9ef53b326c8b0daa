package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/birdmap/pkg/errors"
)

func TestDecorators(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://example.org", nil)
	Decorators{UserAgent("Mozilla/5.0"), Headers{"Accept-Language": "pt-BR"}, nil}.Apply(req)

	assert.Equal(t, "Mozilla/5.0", req.Header.Get("User-Agent"))
	assert.Equal(t, "pt-BR", req.Header.Get("Accept-Language"))

	bare := httptest.NewRequest(http.MethodGet, "https://example.org", nil)
	UserAgent("").Apply(bare)
	NoHeaders{}.Apply(bare)
	assert.Empty(t, bare.Header.Get("User-Agent"))
}

func TestFetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("<html>ok</html>"))
		case "/limited":
			w.WriteHeader(http.StatusTooManyRequests)
		case "/down":
			w.WriteHeader(http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(UserAgent("birdmap-test"), WithTimeout(time.Second))
	ctx := context.Background()

	page, err := c.Fetch(ctx, srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", string(page.Body))
	assert.Equal(t, srv.URL+"/ok", page.URL)
	assert.Equal(t, "birdmap-test", gotUA)

	_, err = c.Fetch(ctx, srv.URL+"/missing")
	var fetchErr *errors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.True(t, errors.IsFetchError(err))

	_, err = c.Fetch(ctx, srv.URL+"/limited")
	assert.True(t, errors.IsRateLimited(err))

	_, err = c.Fetch(ctx, srv.URL+"/down")
	assert.ErrorIs(t, err, errors.ErrUnavailable)
}

func TestFetchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(nil).Fetch(context.Background(), url)
	require.Error(t, err)
	assert.True(t, errors.IsFetchError(err))
}

func TestPacer(t *testing.T) {
	t.Run("first wait is free", func(t *testing.T) {
		p := NewPacer(time.Hour, time.Hour)
		var slept []time.Duration
		p.sleep = func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		}
		require.NoError(t, p.Wait(context.Background()))
		require.NoError(t, p.Wait(context.Background()))
		require.NoError(t, p.Wait(context.Background()))
		assert.Equal(t, []time.Duration{time.Hour, time.Hour}, slept)
	})

	t.Run("random delay stays in range", func(t *testing.T) {
		p := NewPacer(time.Second, 3*time.Second)
		for range 100 {
			d := p.Delay()
			assert.GreaterOrEqual(t, d, time.Second)
			assert.LessOrEqual(t, d, 3*time.Second)
		}
	})

	t.Run("inverted range collapses", func(t *testing.T) {
		p := NewPacer(2*time.Second, time.Second)
		assert.Equal(t, 2*time.Second, p.Delay())
	})

	t.Run("canceled context", func(t *testing.T) {
		p := NewPacer(time.Hour, time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, p.Wait(ctx))
		cancel()
		err := p.Wait(ctx)
		assert.True(t, errors.IsCanceled(err))
	})
}

func TestCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("<html>" + r.URL.Path + "</html>"))
	}))
	defer srv.Close()

	c := NewCache(New(nil), time.Minute)
	ctx := context.Background()

	first, err := c.Fetch(ctx, srv.URL+"/a")
	require.NoError(t, err)
	second, err := c.Fetch(ctx, srv.URL+"/a")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), hits.Load())

	_, err = c.Fetch(ctx, srv.URL+"/b")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, 2, c.Len())

	for range 2 {
		_, err = c.Fetch(ctx, srv.URL+"/missing")
		require.Error(t, err)
	}
	assert.Equal(t, int32(4), hits.Load())
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Cached(srv.URL+"/a"))
	assert.False(t, c.Cached(srv.URL+"/missing"))
}
