package birds

// Records is the ordered sequence held by the store.
type Records []Record

// Clone returns a deep copy of every record.
func (rs Records) Clone() Records {
	if rs == nil {
		return nil
	}
	out := make(Records, len(rs))
	for i, r := range rs {
		out[i] = r.Clone()
	}
	return out
}

// Names returns every record name in order.
func (rs Records) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name()
	}
	return names
}

// Find returns the first record whose key matches name.
func (rs Records) Find(name string) (Record, bool) {
	key := Key(name)
	for _, r := range rs {
		if r.Key() == key {
			return r, true
		}
	}
	return Record{}, false
}

// Duplicates lists names that appear more than once, in first-seen order.
func (rs Records) Duplicates() []string {
	seen := make(map[string]int, len(rs))
	var dups []string
	for _, r := range rs {
		k := r.Key()
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, r.Name())
		}
	}
	return dups
}
