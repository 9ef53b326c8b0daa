package birds_test

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/birdmap/pkg/birds"
)

func TestRecordUnmarshalKeepsOrder(t *testing.T) {
	input := `{"id":7,"name":"Tiê-sangue","scientificName":"Ramphocelus bresilius","imageUrl":"old","tags":["a","b"]}`

	var r birds.Record
	require.NoError(t, json.Unmarshal([]byte(input), &r))

	assert.Equal(t, []string{"id", "name", "scientificName", "imageUrl", "tags"}, r.Keys())
	assert.Equal(t, "Tiê-sangue", r.Name())
	assert.Equal(t, "old", r.ImageURL())
	assert.Equal(t, "", r.WikipediaURL())

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
	assert.Equal(t, input, string(out))
}

func TestRecordMarshalWritesLiteralNonASCII(t *testing.T) {
	var r birds.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Saíra-militar","imageUrl":"a&b"}`), &r))

	out, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Saíra-militar","imageUrl":"a&b"}`, string(out))
}

func TestRecordMarshalNestedLiteralNonASCII(t *testing.T) {
	var r birds.Record
	input := `{"name":"Sa\u00ed-azul","tags":["Sa\u00ed-azul",1.50,null],"meta":{"z":"Ti\u00ea","a":{"b":"\u00e7"}}}`
	require.NoError(t, json.Unmarshal([]byte(input), &r))

	out, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Saí-azul","tags":["Saí-azul",1.50,null],"meta":{"z":"Tiê","a":{"b":"ç"}}}`, string(out))
}

func TestRecordSetString(t *testing.T) {
	r := birds.NewRecord("A", "old")
	r.SetString("imageUrl", "new")
	r.SetString("wikipediaUrl", "https://pt.wikipedia.org/wiki/A")

	assert.Equal(t, []string{"name", "imageUrl", "wikipediaUrl"}, r.Keys())
	assert.Equal(t, "new", r.ImageURL())
	assert.Equal(t, "https://pt.wikipedia.org/wiki/A", r.WikipediaURL())
}

func TestRecordStringEdgeCases(t *testing.T) {
	var r birds.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","imageUrl":null,"id":3}`), &r))

	v, ok := r.String("imageUrl")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = r.String("id")
	assert.False(t, ok)

	_, ok = r.String("missing")
	assert.False(t, ok)
}

func TestRecordDuplicateKeysKeepFirstPosition(t *testing.T) {
	var r birds.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","imageUrl":"x","name":"B"}`), &r))
	assert.Equal(t, []string{"name", "imageUrl"}, r.Keys())
	assert.Equal(t, "B", r.Name())
}

func TestRecordUnmarshalRejectsNonObject(t *testing.T) {
	var r birds.Record
	assert.Error(t, json.Unmarshal([]byte(`["name"]`), &r))
}

func TestRecordValidate(t *testing.T) {
	assert.NoError(t, birds.NewRecord("A", "").Validate())

	var noName birds.Record
	require.NoError(t, json.Unmarshal([]byte(`{"imageUrl":"x"}`), &noName))
	assert.Error(t, noName.Validate())

	assert.Error(t, birds.NewRecord("  ", "").Validate())
}

func TestRecordCloneIsDeep(t *testing.T) {
	r := birds.NewRecord("A", "old")
	c := r.Clone()
	c.SetString("imageUrl", "new")
	assert.Equal(t, "old", r.ImageURL())
	assert.Equal(t, "new", c.ImageURL())
}

func TestKeyNormalization(t *testing.T) {
	composed := "Ti\u00ea-preto"
	decomposed := "Tie\u0302-preto"
	assert.NotEqual(t, composed, decomposed)
	assert.Equal(t, birds.Key(composed), birds.Key(decomposed))
	assert.Equal(t, "Tiê-preto", birds.Key("  Tiê-preto "))
}

func TestRecordsHelpers(t *testing.T) {
	rs := birds.Records{
		birds.NewRecord("A", "1"),
		birds.NewRecord("B", "2"),
		birds.NewRecord("A", "3"),
	}
	assert.Equal(t, []string{"A", "B", "A"}, rs.Names())
	assert.Equal(t, []string{"A"}, rs.Duplicates())

	r, ok := rs.Find("B")
	require.True(t, ok)
	assert.Equal(t, "2", r.ImageURL())

	_, ok = rs.Find("Z")
	assert.False(t, ok)

	clone := rs.Clone()
	clone[0].SetString("imageUrl", "changed")
	assert.Equal(t, "1", rs[0].ImageURL())
}

func TestRecordMarshalYAML(t *testing.T) {
	r := birds.NewRecord("Saí-verde", "a.jpg")
	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "name: Saí-verde\nimageUrl: a.jpg\n", string(out))
}
