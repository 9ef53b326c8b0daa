package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MainPhoto picks the species page lead photo.
var MainPhoto = Matcher{
	Name: "main-photo",
	Match: func(p *Page) string {
		return selectAttr(p, ".contfoto img[src]", "src")
	},
}

// GalleryPhoto picks the first gallery photo.
var GalleryPhoto = Matcher{
	Name: "gallery",
	Match: func(p *Page) string {
		return selectAttr(p, ".galeria-container img[src]", "src")
	},
}

// AnyPhoto picks the first image that looks like a hosted photo rather
// than an icon.
var AnyPhoto = Matcher{
	Name: "any-photo",
	Match: func(p *Page) string {
		var found string
		p.Doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			src := strings.TrimSpace(s.AttrOr("src", ""))
			if isPhotoPath(src) {
				found = src
				return false
			}
			return true
		})
		return found
	},
}

// WikiAves is the matcher order for WikiAves species pages.
var WikiAves = []Matcher{MainPhoto, GalleryPhoto, AnyPhoto}

func isPhotoPath(src string) bool {
	if src == "" || strings.HasSuffix(strings.ToLower(src), ".gif") {
		return false
	}
	return strings.Contains(src, "fotos") || strings.Contains(src, "images")
}
