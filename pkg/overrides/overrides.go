// Package overrides provides the curated name → image URL tables. The
// built-in sets are built once per process; Build layers an optional YAML
// file over the selected one.
package overrides

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/errors"
)

// Built-in table names.
const (
	TableWikimedia = "wikimedia"
	TableWikiAves  = "wikiaves"
)

// File merge modes.
const (
	ModeExtend  = "extend"
	ModeReplace = "replace"
)

// Table is an immutable name → URL mapping keyed by birds.Key.
type Table struct {
	entries map[string]string
}

// NewTable builds a table from raw names.
func NewTable(m map[string]string) Table {
	entries := make(map[string]string, len(m))
	for name, url := range m {
		entries[birds.Key(name)] = strings.TrimSpace(url)
	}
	return Table{entries: entries}
}

// Lookup returns the curated URL for name.
func (t Table) Lookup(name string) (string, bool) {
	url, ok := t.entries[birds.Key(name)]
	return url, ok
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

// Names returns the entry names sorted.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the entries.
func (t Table) Map() map[string]string {
	out := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// Extend returns a new table with other's entries layered over t's.
func (t Table) Extend(other Table) Table {
	out := t.Map()
	for k, v := range other.entries {
		out[k] = v
	}
	return Table{entries: out}
}

var (
	wikimediaTable = sync.OnceValue(func() Table { return NewTable(Wikimedia) })
	wikiAvesTable  = sync.OnceValue(func() Table { return NewTable(WikiAves) })
)

// Default returns the Wikimedia table.
func Default() Table {
	return wikimediaTable()
}

// Builtin returns a built-in table by name. An empty name means Wikimedia.
func Builtin(name string) (Table, error) {
	switch strings.ToLower(name) {
	case "", TableWikimedia:
		return wikimediaTable(), nil
	case TableWikiAves:
		return wikiAvesTable(), nil
	}
	return Table{}, errors.NewConfigError("overrides", "unknown built-in table "+name, nil)
}

// LoadFile reads a YAML mapping of bird name to URL.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, errors.WrapIO("read", path, err)
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Table{}, errors.WrapParse("yaml", path, err)
	}
	return NewTable(m), nil
}

// Options selects a table.
type Options struct {
	Table string // built-in table name
	File  string // optional YAML file
	Mode  string // extend (default) or replace
}

// Build assembles a table from opts. The file is read on every call.
func Build(opts Options) (Table, error) {
	base, err := Builtin(opts.Table)
	if err != nil {
		return Table{}, err
	}
	if opts.File == "" {
		return base, nil
	}

	fromFile, err := LoadFile(opts.File)
	if err != nil {
		return Table{}, err
	}
	switch strings.ToLower(opts.Mode) {
	case "", ModeExtend:
		return base.Extend(fromFile), nil
	case ModeReplace:
		return fromFile, nil
	}
	return Table{}, errors.NewConfigError("overrides", "unknown mode "+opts.Mode, nil)
}
