package urlfix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/birdmap/pkg/urlfix"
)

func TestIsDirectHost(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://upload.wikimedia.org/wikipedia/commons/4/4b/Tangara.jpg", true},
		{"//upload.wikimedia.org/wikipedia/commons/thumb/a.jpg", true},
		{"https://UPLOAD.wikimedia.org/x.jpg", true},
		{"https://commons.wikimedia.org/wiki/Special:FilePath/Foo.jpg", false},
		{"https://s3.amazonaws.com/media.wikiaves.com.br/images/1.jpg", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, urlfix.IsDirectHost(tt.url))
		})
	}
}

func TestRewriteSpecialFilePath(t *testing.T) {
	got, ok := urlfix.RewriteSpecialFilePath("https://commons.wikimedia.org/wiki/Special:FilePath/Foo.jpg")
	assert.True(t, ok)
	assert.Equal(t, "https://upload.wikimedia.org/wikipedia/commons/thumb/latest/Foo.jpg/500px-Foo.jpg", got)
	assert.Equal(t, 2, strings.Count(got, "Foo.jpg"))
	assert.True(t, urlfix.IsDirectHost(got))
}

func TestRewriteEdgeCases(t *testing.T) {
	t.Run("not a special path", func(t *testing.T) {
		_, ok := urlfix.RewriteSpecialFilePath("https://example.org/Foo.jpg")
		assert.False(t, ok)
	})

	t.Run("no filename", func(t *testing.T) {
		_, ok := urlfix.RewriteSpecialFilePath("https://commons.wikimedia.org/wiki/Special:FilePath/")
		assert.False(t, ok)
	})

	t.Run("query string dropped", func(t *testing.T) {
		got, ok := urlfix.RewriteSpecialFilePath("https://commons.wikimedia.org/wiki/Special:FilePath/Bar.png?width=300")
		assert.True(t, ok)
		assert.Equal(t, "https://upload.wikimedia.org/wikipedia/commons/thumb/latest/Bar.png/500px-Bar.png", got)
	})

	t.Run("custom width", func(t *testing.T) {
		got, ok := urlfix.NewRewriter(320).Rewrite("http://x/Special:FilePath/Baz.jpg")
		assert.True(t, ok)
		assert.Equal(t, "https://upload.wikimedia.org/wikipedia/commons/thumb/latest/Baz.jpg/320px-Baz.jpg", got)
	})

	t.Run("zero width uses default", func(t *testing.T) {
		got, _ := urlfix.Rewriter{}.Rewrite("http://x/Special:FilePath/Baz.jpg")
		assert.Contains(t, got, "/500px-Baz.jpg")
	})
}
