package resolver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/birdmap/internal/transport"
	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/errors"
	"github.com/agentstation/birdmap/pkg/logging"
	"github.com/agentstation/birdmap/pkg/overrides"
	"github.com/agentstation/birdmap/pkg/resolver"
	"github.com/agentstation/birdmap/pkg/scrape"
	"github.com/agentstation/birdmap/pkg/sheet"
)

func record(name, imageURL string, extra ...string) birds.Record {
	rec := birds.NewRecord(name, imageURL)
	for i := 0; i+1 < len(extra); i += 2 {
		rec.SetString(extra[i], extra[i+1])
	}
	return rec
}

// stub returns a fixed result and counts calls.
type stub struct {
	result resolver.Result
	calls  int
}

func (s *stub) Name() string { return "stub" }

func (s *stub) Resolve(context.Context, birds.Record) resolver.Result {
	s.calls++
	return s.result
}

func TestStatic(t *testing.T) {
	r := resolver.NewStatic(overrides.NewTable(map[string]string{"Tiê-preto": "https://example.org/t.jpg"}))
	ctx := context.Background()

	res := r.Resolve(ctx, record("Tiê-preto", ""))
	assert.Equal(t, resolver.Found("https://example.org/t.jpg"), res)

	res = r.Resolve(ctx, record("Bem-te-vi", ""))
	assert.Equal(t, resolver.NotFound, res.Outcome)
}

func TestSheet(t *testing.T) {
	tbl := &sheet.Table{
		Headers: []string{"Nome Comum", "Picture"},
		Rows: [][]string{
			{"Tiê-preto", "https://example.org/t.jpg"},
			{"Bem-te-vi", "nan"},
			{" Saí-azul ", ""},
		},
	}

	r, err := resolver.NewSheet(tbl, "Nome Comum", "Picture")
	require.NoError(t, err)
	assert.Equal(t, "sheet:Picture", r.Name())
	assert.Equal(t, 1, r.Len())

	ctx := context.Background()
	assert.Equal(t, resolver.Found("https://example.org/t.jpg"), r.Resolve(ctx, record(" Tiê-preto", "")))
	assert.Equal(t, resolver.NotFound, r.Resolve(ctx, record("Bem-te-vi", "")).Outcome)
	assert.Equal(t, resolver.NotFound, r.Resolve(ctx, record("Saí-azul", "")).Outcome)

	_, err = resolver.NewSheet(tbl, "Nome Comum", "link")
	assert.True(t, errors.IsNotFound(err))
}

func TestField(t *testing.T) {
	r := resolver.NewField("wikipediaUrl")
	ctx := context.Background()

	res := r.Resolve(ctx, record("A", "", "wikipediaUrl", " https://pt.wikipedia.org/wiki/A "))
	assert.Equal(t, "https://pt.wikipedia.org/wiki/A", res.URL)

	assert.Equal(t, resolver.NotFound, r.Resolve(ctx, record("A", "")).Outcome)
	assert.Equal(t, resolver.NotFound, r.Resolve(ctx, record("A", "", "wikipediaUrl", "")).Outcome)
}

func TestFilePath(t *testing.T) {
	r := resolver.NewFilePath(500)
	ctx := context.Background()

	res := r.Resolve(ctx, record("A", "https://commons.wikimedia.org/wiki/Special:FilePath/Foo.jpg"))
	require.True(t, res.OK())
	assert.Equal(t, "https://upload.wikimedia.org/wikipedia/commons/thumb/latest/Foo.jpg/500px-Foo.jpg", res.URL)

	res = r.Resolve(ctx, record("A", "https://example.org/Foo.jpg"))
	assert.Equal(t, resolver.NotFound, res.Outcome)
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	boom := errors.NewFetchError("https://x", 500, "boom")

	t.Run("first resolved wins", func(t *testing.T) {
		a := &stub{result: resolver.Missing("a")}
		b := &stub{result: resolver.Found("u")}
		c := &stub{result: resolver.Found("v")}
		res := resolver.NewChain(a, b, c).Resolve(ctx, record("A", ""))
		assert.Equal(t, "u", res.URL)
		assert.Equal(t, 0, c.calls)
	})

	t.Run("failure beats not found", func(t *testing.T) {
		res := resolver.NewChain(
			&stub{result: resolver.Failure("fetch failed", boom)},
			&stub{result: resolver.Missing("nope")},
		).Resolve(ctx, record("A", ""))
		assert.Equal(t, resolver.Failed, res.Outcome)
		assert.ErrorIs(t, res.Err, errors.ErrUnavailable)
		assert.Equal(t, "fetch failed; nope", res.Reason)
	})

	t.Run("all missing", func(t *testing.T) {
		res := resolver.NewChain(&stub{result: resolver.Missing("a")}).Resolve(ctx, record("A", ""))
		assert.Equal(t, resolver.Missing("a"), res)
	})

	t.Run("canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		s := &stub{result: resolver.Found("u")}
		res := resolver.NewChain(s).Resolve(cctx, record("A", ""))
		assert.Equal(t, resolver.Failed, res.Outcome)
		assert.True(t, errors.IsCanceled(res.Err))
		assert.Equal(t, 0, s.calls)
	})
}

func TestSkipDirect(t *testing.T) {
	inner := &stub{result: resolver.Found("u")}
	r := resolver.NewSkipDirect(inner)
	ctx := context.Background()

	res := r.Resolve(ctx, record("A", "https://upload.wikimedia.org/wikipedia/commons/a/ab/A.jpg"))
	assert.Equal(t, resolver.Missing("already direct"), res)
	assert.Equal(t, 0, inner.calls)

	res = r.Resolve(ctx, record("A", "https://commons.wikimedia.org/wiki/Special:FilePath/A.jpg"))
	assert.Equal(t, "u", res.URL)
	assert.Equal(t, 1, inner.calls)
}

func TestScrape(t *testing.T) {
	logging.DisableLoggingForTest(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wiki/Tie":
			_, _ = w.Write([]byte(`<table class="infobox"><tr><td><img src="/media/tie.jpg"></td></tr></table>`))
		case "/wiki/Bare":
			_, _ = w.Write([]byte(`<p>nothing here</p>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	r := resolver.NewScrape("wikipedia", resolver.NewField("wikipediaUrl"), transport.New(nil), scrape.Wikipedia,
		resolver.WithPacer(transport.NewPacer(0, 0)))
	ctx := context.Background()

	t.Run("resolved", func(t *testing.T) {
		res := r.Resolve(ctx, record("Tiê", "", "wikipediaUrl", srv.URL+"/wiki/Tie"))
		require.True(t, res.OK())
		assert.Equal(t, srv.URL+"/media/tie.jpg", res.URL)
	})

	t.Run("no locator", func(t *testing.T) {
		res := r.Resolve(ctx, record("Tiê", ""))
		assert.Equal(t, resolver.NotFound, res.Outcome)
	})

	t.Run("no matching selector", func(t *testing.T) {
		res := r.Resolve(ctx, record("Tiê", "old", "wikipediaUrl", srv.URL+"/wiki/Bare"))
		assert.Equal(t, resolver.NotFound, res.Outcome)
		assert.Empty(t, res.URL)
	})

	t.Run("http error", func(t *testing.T) {
		res := r.Resolve(ctx, record("Tiê", "", "wikipediaUrl", srv.URL+"/wiki/Missing"))
		assert.Equal(t, resolver.Failed, res.Outcome)
		assert.True(t, errors.IsFetchError(res.Err))
	})
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "resolved", resolver.Resolved.String())
	assert.Equal(t, "not_found", resolver.NotFound.String())
	assert.Equal(t, "failed", resolver.Failed.String())
	assert.Equal(t, "outcome(9)", resolver.Outcome(9).String())
}

func TestScrapeRelativeLocator(t *testing.T) {
	logging.DisableLoggingForTest(t)

	var hits []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		_, _ = w.Write([]byte(`<div class="contfoto"><img src="/fotos/main.jpg"></div>`))
	}))
	defer srv.Close()

	r := resolver.NewScrape("wikiaves", resolver.NewField("link"), transport.New(nil), scrape.WikiAves,
		resolver.WithBaseURL(srv.URL))

	res := r.Resolve(context.Background(), record("Tiê", "", "link", "/wiki/tie-preto"))
	require.True(t, res.OK())
	assert.Equal(t, srv.URL+"/fotos/main.jpg", res.URL)
	assert.Equal(t, []string{"/wiki/tie-preto"}, hits)
}

// countingPacer counts waits.
type countingPacer struct{ waits int }

func (p *countingPacer) Wait(context.Context) error {
	p.waits++
	return nil
}

func TestScrapeSkipsPauseForCachedPage(t *testing.T) {
	logging.DisableLoggingForTest(t)

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(`<table class="infobox"><tr><td><img src="/media/shared.jpg"></td></tr></table>`))
	}))
	defer srv.Close()

	pacer := &countingPacer{}
	r := resolver.NewScrape("wikipedia", resolver.NewField("wikipediaUrl"),
		transport.NewCache(transport.New(nil), time.Minute), scrape.Wikipedia,
		resolver.WithPacer(pacer))

	for _, name := range []string{"Tiê", "Tiê-preto", "Tiê-sangue"} {
		res := r.Resolve(context.Background(), record(name, "", "wikipediaUrl", srv.URL+"/wiki/Shared"))
		require.True(t, res.OK())
	}
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, pacer.waits)
}
