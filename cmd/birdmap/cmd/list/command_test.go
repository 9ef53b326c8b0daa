package list

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/birdmap"
	"github.com/agentstation/birdmap/internal/cmd/application"
)

const catalog = `[
  {"name": "Tiê-preto", "imageUrl": "https://commons.wikimedia.org/wiki/Special:FilePath/Tachyphonus_coronatus.jpg"},
  {"name": "Bem-te-vi", "imageUrl": "https://upload.wikimedia.org/wikipedia/commons/a/ab/Pitangus.jpg"},
  {"name": "Saí-azul", "imageUrl": ""}
]
`

func newMock(t *testing.T, format string) *application.Mock {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bird_data.json")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	return &application.Mock{
		BirdmapFunc: func(opts ...birdmap.Option) (birdmap.Birdmap, error) {
			return birdmap.New(append([]birdmap.Option{birdmap.WithJSONPath(path)}, opts...)...)
		},
		OutputFormatFunc: func() string { return format },
	}
}

func run(t *testing.T, mock *application.Mock, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func names(t *testing.T, out string) []string {
	t.Helper()
	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	var got []string
	for _, r := range records {
		got = append(got, r["name"].(string))
	}
	return got
}

func TestList(t *testing.T) {
	out := run(t, newMock(t, "json"))
	assert.Equal(t, []string{"Tiê-preto", "Bem-te-vi", "Saí-azul"}, names(t, out))
}

func TestListNotDirect(t *testing.T) {
	out := run(t, newMock(t, "json"), "--not-direct")
	assert.Equal(t, []string{"Tiê-preto", "Saí-azul"}, names(t, out))
}

func TestListName(t *testing.T) {
	out := run(t, newMock(t, "json"), "--name", "sa*")
	assert.Equal(t, []string{"Saí-azul"}, names(t, out))

	out = run(t, newMock(t, "json"), "--name", "preto|vi", "--not-direct")
	assert.Equal(t, []string{"Tiê-preto"}, names(t, out))
}

func TestListTable(t *testing.T) {
	out := run(t, newMock(t, "table"))
	assert.Contains(t, out, "Bem-te-vi")
	assert.Contains(t, out, "upload.wikimedia.org")
	assert.Contains(t, out, "commons.wikimedia.org")
}

func TestListMissingCatalog(t *testing.T) {
	mock := newMock(t, "json")
	cmd := NewCommand(mock)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--json", filepath.Join(t.TempDir(), "none.json")})
	require.Error(t, cmd.Execute())
}
