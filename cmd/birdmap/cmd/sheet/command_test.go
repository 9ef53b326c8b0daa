package sheet

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/birdmap/internal/cmd/application"
	pkgsheet "github.com/agentstation/birdmap/pkg/sheet"
)

func writeSheet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aves.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"Nome Comum,Picture,link\n"+
			"Tiê-preto,https://example.org/tie.jpg,/tie-preto\n"+
			"Bem-te-vi,nan,/bem-te-vi\n"+
			"Saí-azul,https://example.org/sai.jpg,\n"), 0o644))
	return path
}

func run(t *testing.T, mock *application.Mock, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestColumns(t *testing.T) {
	path := writeSheet(t)

	out, err := run(t, &application.Mock{}, "columns", "--sheet", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Nome Comum")
	assert.Contains(t, out, "Picture")
	assert.Contains(t, out, "3 rows")
}

func TestColumnsJSON(t *testing.T) {
	mock := &application.Mock{OutputFormatFunc: func() string { return "json" }}

	out, err := run(t, mock, "columns", "--sheet", writeSheet(t))
	require.NoError(t, err)

	var headers []string
	require.NoError(t, json.Unmarshal([]byte(out), &headers))
	assert.Equal(t, []string{"Nome Comum", "Picture", "link"}, headers)
}

func TestPreview(t *testing.T) {
	mock := &application.Mock{OutputFormatFunc: func() string { return "json" }}

	out, err := run(t, mock, "preview", "--sheet", writeSheet(t), "-n", "2")
	require.NoError(t, err)

	var pairs []pkgsheet.Pair
	require.NoError(t, json.Unmarshal([]byte(out), &pairs))
	assert.Equal(t, []pkgsheet.Pair{
		{Name: "Tiê-preto", Value: "https://example.org/tie.jpg"},
		{Name: "Bem-te-vi", Value: ""},
	}, pairs)
}

func TestPreviewColumn(t *testing.T) {
	mock := &application.Mock{OutputFormatFunc: func() string { return "json" }}

	out, err := run(t, mock, "preview", "--sheet", writeSheet(t), "--column", "link")
	require.NoError(t, err)

	var pairs []pkgsheet.Pair
	require.NoError(t, json.Unmarshal([]byte(out), &pairs))
	require.Len(t, pairs, 3)
	assert.Equal(t, "/tie-preto", pairs[0].Value)
	assert.Empty(t, pairs[2].Value)
}

func TestPreviewUnknownColumn(t *testing.T) {
	_, err := run(t, &application.Mock{}, "preview", "--sheet", writeSheet(t), "--column", "Foto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Foto"`)
}

func TestMissingSheet(t *testing.T) {
	_, err := run(t, &application.Mock{}, "columns", "--sheet", filepath.Join(t.TempDir(), "none.csv"))
	require.Error(t, err)
}
