// Package urlfix holds the image URL heuristics: recognising URLs that
// already point at the direct media host, and rewriting the legacy
// Special:FilePath form into a direct thumbnail URL.
package urlfix

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/agentstation/birdmap/pkg/constants"
)

// IsDirectHost reports whether raw already points at the direct media host.
func IsDirectHost(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return strings.Contains(raw, constants.DirectImageHost)
	}
	return strings.EqualFold(u.Hostname(), constants.DirectImageHost)
}

// IsSpecialFilePath reports whether raw uses the Special:FilePath form.
func IsSpecialFilePath(raw string) bool {
	return strings.Contains(raw, constants.SpecialFilePathMarker)
}

// Rewriter turns Special:FilePath URLs into direct thumbnail URLs.
type Rewriter struct {
	Width int
}

// NewRewriter returns a rewriter using the given thumbnail width.
// A non-positive width falls back to DefaultThumbWidth.
func NewRewriter(width int) Rewriter {
	if width <= 0 {
		width = constants.DefaultThumbWidth
	}
	return Rewriter{Width: width}
}

// Rewrite returns the direct URL for a Special:FilePath URL. The filename is
// the last path segment, placed both as the directory and after the size
// prefix. The result is a guess and may not exist on the host. ok is false
// when raw is not a Special:FilePath URL or has no filename.
func (rw Rewriter) Rewrite(raw string) (string, bool) {
	if !IsSpecialFilePath(raw) {
		return "", false
	}
	filename := lastSegment(raw)
	if filename == "" || strings.Contains(filename, constants.SpecialFilePathMarker) {
		return "", false
	}
	width := rw.Width
	if width <= 0 {
		width = constants.DefaultThumbWidth
	}
	return fmt.Sprintf(constants.ThumbURLTemplate, filename, width, filename), true
}

// RewriteSpecialFilePath rewrites with the default thumbnail width.
func RewriteSpecialFilePath(raw string) (string, bool) {
	return NewRewriter(constants.DefaultThumbWidth).Rewrite(raw)
}

func lastSegment(raw string) string {
	s := raw
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}
