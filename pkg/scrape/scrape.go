// Package scrape extracts image URLs from bird pages. Extraction is an
// ordered list of matchers; the first one to return a URL wins.
package scrape

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/agentstation/birdmap/pkg/errors"
)

// Page is a parsed HTML document together with the URL it came from.
type Page struct {
	URL *url.URL
	Doc *goquery.Document
}

// Matcher looks for an image URL in a page. It returns "" when it finds
// nothing. Matchers must not modify the page.
type Matcher struct {
	Name  string
	Match func(p *Page) string
}

// Parse builds a Page from raw markup.
func Parse(pageURL string, body []byte) (*Page, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, errors.WrapParse("url", pageURL, err)
	}
	node, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapParse("html", pageURL, err)
	}
	return &Page{URL: u, Doc: goquery.NewDocumentFromNode(node)}, nil
}

// First runs matchers in order and returns the first absolute URL found
// together with the matcher name.
func First(p *Page, matchers []Matcher) (string, string, bool) {
	for _, m := range matchers {
		raw := strings.TrimSpace(m.Match(p))
		if raw == "" {
			continue
		}
		if abs := p.Resolve(raw); abs != "" {
			return abs, m.Name, true
		}
	}
	return "", "", false
}

// Resolve makes ref absolute against the page URL. Protocol-relative
// references take the page scheme.
func (p *Page) Resolve(ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if p.URL == nil {
		if r.IsAbs() {
			return r.String()
		}
		return ""
	}
	return p.URL.ResolveReference(r).String()
}

// selectAttr returns attr of the first element matched by selector that
// has a non-empty value.
func selectAttr(p *Page, selector, attr string) string {
	var found string
	p.Doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
			found = v
			return false
		}
		return true
	})
	return found
}
