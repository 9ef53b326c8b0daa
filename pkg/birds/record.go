// Package birds defines the bird record model. A record is an ordered list
// of JSON fields so that a load/save cycle keeps unknown fields and their
// order intact. Only name, imageUrl and wikipediaUrl have typed accessors.
package birds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/unicode/norm"

	"github.com/agentstation/birdmap/pkg/constants"
	"github.com/agentstation/birdmap/pkg/errors"
)

// Field is one key/value pair of a record, value kept as raw JSON.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Record is a single bird entry.
type Record struct {
	fields []Field
}

// NewRecord builds a record with name and imageUrl set.
func NewRecord(name, imageURL string) Record {
	var r Record
	r.SetString(constants.FieldName, name)
	r.SetString(constants.FieldImageURL, imageURL)
	return r
}

// Name returns the record's name field.
func (r Record) Name() string {
	s, _ := r.String(constants.FieldName)
	return s
}

// ImageURL returns the record's imageUrl field, empty when absent or null.
func (r Record) ImageURL() string {
	s, _ := r.String(constants.FieldImageURL)
	return s
}

// WikipediaURL returns the record's wikipediaUrl field.
func (r Record) WikipediaURL() string {
	s, _ := r.String(constants.FieldWikipediaURL)
	return s
}

// Key returns the normalized merge key of the record's name.
func (r Record) Key() string {
	return Key(r.Name())
}

// Has reports whether the record contains key.
func (r Record) Has(key string) bool {
	return r.index(key) >= 0
}

// String returns the string value stored under key. The second result is
// false when the key is missing or the value is not a JSON string. A JSON
// null reads as an empty string.
func (r Record) String(key string) (string, bool) {
	i := r.index(key)
	if i < 0 {
		return "", false
	}
	raw := bytes.TrimSpace(r.fields[i].Value)
	if bytes.Equal(raw, []byte("null")) {
		return "", true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// SetString stores value under key, replacing in place or appending.
func (r *Record) SetString(key, value string) {
	raw := encodeString(value)
	if i := r.index(key); i >= 0 {
		r.fields[i].Value = raw
		return
	}
	r.fields = append(r.fields, Field{Key: key, Value: raw})
}

// Keys returns the field names in document order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the record's fields.
func (r Record) Fields() []Field {
	return r.Clone().fields
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	fields := make([]Field, len(r.fields))
	for i, f := range r.fields {
		fields[i] = Field{Key: f.Key, Value: append(json.RawMessage(nil), f.Value...)}
	}
	return Record{fields: fields}
}

// Validate checks that the record carries a non-empty string name.
func (r Record) Validate() error {
	name, ok := r.String(constants.FieldName)
	if !ok {
		return errors.NewValidationError(constants.FieldName, nil, "missing or not a string")
	}
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError(constants.FieldName, name, "empty")
	}
	return nil
}

// MarshalJSON writes the fields in their original order. String values are
// re-encoded so non-ASCII text is written literally.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeString(f.Key))
		buf.WriteByte(':')
		buf.Write(literalValue(f.Value))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping key order. A repeated key keeps
// its first position and its last value.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("bird record must be a JSON object, got %v", tok)
	}

	r.fields = r.fields[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if i := r.index(key); i >= 0 {
			r.fields[i].Value = raw
			continue
		}
		r.fields = append(r.fields, Field{Key: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalYAML exposes the record as an ordered map for YAML output.
func (r Record) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, 0, len(r.fields))
	for _, f := range r.fields {
		var v any
		if err := json.Unmarshal(f.Value, &v); err != nil {
			return nil, err
		}
		out = append(out, yaml.MapItem{Key: f.Key, Value: v})
	}
	return out, nil
}

func (r Record) index(key string) int {
	for i, f := range r.fields {
		if f.Key == key {
			return i
		}
	}
	return -1
}

// Key normalizes a bird name for lookups: surrounding space is trimmed and
// the text is put in Unicode NFC so composed and decomposed accents match.
func Key(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

func encodeString(s string) json.RawMessage {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}

// literalValue re-encodes raw so strings at any depth carry literal
// non-ASCII text. Object keys keep their order.
func literalValue(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("null")
	}
	var buf bytes.Buffer
	if err := writeLiteral(&buf, trimmed); err != nil {
		return trimmed
	}
	return buf.Bytes()
}

func writeLiteral(buf *bytes.Buffer, raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return fmt.Errorf("empty value")
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		buf.Write(encodeString(s))
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		buf.WriteByte('[')
		for i, item := range items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeLiteral(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case '{':
		dec := json.NewDecoder(bytes.NewReader(raw))
		if _, err := dec.Token(); err != nil {
			return err
		}
		buf.WriteByte('{')
		for n := 0; dec.More(); n++ {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			key, ok := tok.(string)
			if !ok {
				return fmt.Errorf("unexpected object key %v", tok)
			}
			var v json.RawMessage
			if err := dec.Decode(&v); err != nil {
				return err
			}
			if n > 0 {
				buf.WriteByte(',')
			}
			buf.Write(encodeString(key))
			buf.WriteByte(':')
			if err := writeLiteral(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.Write(raw)
	}
	return nil
}
