// Package merge applies resolved image URLs to bird records and builds the
// resolved URL map from a resolver.
package merge

import (
	"fmt"
	"strings"

	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/constants"
)

// URLMap maps bird names to candidate image URLs. It lives for one run.
type URLMap map[string]string

// lookup finds name exactly, then by normalized key.
func (m URLMap) lookup(name string, index map[string]string) (string, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	v, ok := index[birds.Key(name)]
	return v, ok
}

func (m URLMap) index() map[string]string {
	idx := make(map[string]string, len(m))
	for k, v := range m {
		idx[birds.Key(k)] = v
	}
	return idx
}

// Option configures a merge.
type Option func(*options)

type options struct {
	requireNonEmpty bool
}

// WithRequireNonEmpty skips map values that are empty after trimming.
func WithRequireNonEmpty() Option {
	return func(o *options) { o.requireNonEmpty = true }
}

// Change is one imageUrl rewrite.
type Change struct {
	Name string `json:"name" yaml:"name"`
	Old  string `json:"old" yaml:"old"`
	New  string `json:"new" yaml:"new"`
}

// Changes is an ordered change list.
type Changes []Change

// String returns a human-readable summary.
func (c Changes) String() string {
	if len(c) == 0 {
		return "No changes detected"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d image url(s) updated", len(c))
	for _, ch := range c {
		fmt.Fprintf(&b, "\n  %s: %s -> %s", ch.Name, ch.Old, ch.New)
	}
	return b.String()
}

// Merge returns a copy of records where every record named in m whose
// imageUrl differs from the mapped value takes that value, and the number
// of records changed. records itself is not modified.
func Merge(records birds.Records, m URLMap, opts ...Option) (birds.Records, int) {
	out, changes := apply(records, m, opts)
	return out, len(changes)
}

// MergeWithChanges is Merge returning the change list instead of a count.
func MergeWithChanges(records birds.Records, m URLMap, opts ...Option) (birds.Records, Changes) {
	return apply(records, m, opts)
}

// Diff lists the changes Merge would make without applying them.
func Diff(records birds.Records, m URLMap, opts ...Option) Changes {
	_, changes := apply(records, m, opts)
	return changes
}

func apply(records birds.Records, m URLMap, opts []Option) (birds.Records, Changes) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	out := records.Clone()
	if len(m) == 0 {
		return out, nil
	}

	idx := m.index()
	var changes Changes
	for i := range out {
		name := out[i].Name()
		url, ok := m.lookup(name, idx)
		if !ok {
			continue
		}
		if o.requireNonEmpty && strings.TrimSpace(url) == "" {
			continue
		}
		old := out[i].ImageURL()
		if url == old {
			continue
		}
		out[i].SetString(constants.FieldImageURL, url)
		changes = append(changes, Change{Name: name, Old: old, New: url})
	}
	return out, changes
}
