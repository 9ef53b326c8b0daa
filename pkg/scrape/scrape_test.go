package scrape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/birdmap/pkg/scrape"
)

func parse(t *testing.T, pageURL, body string) *scrape.Page {
	t.Helper()
	p, err := scrape.Parse(pageURL, []byte(body))
	require.NoError(t, err)
	return p
}

func TestWikipediaMatchers(t *testing.T) {
	const article = "https://pt.wikipedia.org/wiki/Ti%C3%AA-preto"

	tests := []struct {
		name    string
		pageURL string
		body    string
		want    string
		matcher string
		found   bool
	}{
		{
			name:    "infobox wins over body",
			pageURL: article,
			body: `<div class="mw-parser-output"><img src="//upload.wikimedia.org/body.jpg">
				<table class="infobox"><tr><td><img src="//upload.wikimedia.org/infobox.jpg"></td></tr></table></div>`,
			want:    "https://upload.wikimedia.org/infobox.jpg",
			matcher: "infobox",
			found:   true,
		},
		{
			name:    "body image when no infobox",
			pageURL: article,
			body:    `<div class="mw-parser-output"><p>text</p><img src="/static/a.png"></div>`,
			want:    "https://pt.wikipedia.org/static/a.png",
			matcher: "content",
			found:   true,
		},
		{
			name:    "file page link",
			pageURL: "https://pt.wikipedia.org/wiki/Ficheiro:Habia_rubica.JPG",
			body:    `<div class="fullImageLink"><a href="//upload.wikimedia.org/h/Habia_rubica.JPG">x</a></div>`,
			want:    "https://upload.wikimedia.org/h/Habia_rubica.JPG",
			matcher: "file-link",
			found:   true,
		},
		{
			name:    "file link ignored on articles",
			pageURL: article,
			body:    `<div class="fullImageLink"><a href="//upload.wikimedia.org/h/x.jpg">x</a></div>`,
		},
		{
			name:    "empty src skipped",
			pageURL: article,
			body:    `<table class="infobox"><tr><td><img src=""></td></tr></table>`,
		},
		{
			name:    "nothing matches",
			pageURL: article,
			body:    `<html><body><p>no images</p></body></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matcher, ok := scrape.First(parse(t, tt.pageURL, tt.body), scrape.Wikipedia)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.matcher, matcher)
		})
	}
}

func TestWikiAvesMatchers(t *testing.T) {
	const page = "https://www.wikiaves.com.br/wiki/tie-preto"

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "main photo",
			body: `<div class="galeria-container"><img src="/g.jpg"></div><div class="contfoto"><img src="/img/main.jpg"></div>`,
			want: "https://www.wikiaves.com.br/img/main.jpg",
		},
		{
			name: "gallery",
			body: `<div class="galeria-container"><img src="https://s3.amazonaws.com/media.wikiaves.com.br/images/1/g.jpg"></div>`,
			want: "https://s3.amazonaws.com/media.wikiaves.com.br/images/1/g.jpg",
		},
		{
			name: "any photo skips icons and gifs",
			body: `<img src="/logo.png"><img src="/images/spinner.gif"><img src="/fotos/tie.jpg">`,
			want: "https://www.wikiaves.com.br/fotos/tie.jpg",
		},
		{
			name: "no photo",
			body: `<img src="/logo.png"><img src="/images/loading.GIF">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := scrape.First(parse(t, page, tt.body), scrape.WikiAves)
			assert.Equal(t, tt.want != "", ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBadURL(t *testing.T) {
	_, err := scrape.Parse("://bad", []byte("<html></html>"))
	assert.Error(t, err)
}
