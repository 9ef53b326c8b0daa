package scrape

import (
	"net/url"
	"strings"
)

// InfoboxImage picks the image in the article infobox.
var InfoboxImage = Matcher{
	Name: "infobox",
	Match: func(p *Page) string {
		return selectAttr(p, "table.infobox img[src]", "src")
	},
}

// ContentImage picks the first image in the article body.
var ContentImage = Matcher{
	Name: "content",
	Match: func(p *Page) string {
		return selectAttr(p, "div.mw-parser-output img[src]", "src")
	},
}

// FileLinkImage picks the full-resolution link on a file description page.
var FileLinkImage = Matcher{
	Name: "file-link",
	Match: func(p *Page) string {
		if !isFilePage(p.URL) {
			return ""
		}
		return selectAttr(p, "div.fullImageLink a[href]", "href")
	},
}

// Wikipedia is the matcher order for Wikipedia article pages.
var Wikipedia = []Matcher{InfoboxImage, ContentImage, FileLinkImage}

var filePrefixes = []string{"File:", "Ficheiro:", "Arquivo:"}

func isFilePage(u *url.URL) bool {
	if u == nil {
		return false
	}
	path, err := url.PathUnescape(u.Path)
	if err != nil {
		path = u.Path
	}
	title := path[strings.LastIndex(path, "/")+1:]
	for _, prefix := range filePrefixes {
		if strings.HasPrefix(title, prefix) {
			return true
		}
	}
	return false
}
