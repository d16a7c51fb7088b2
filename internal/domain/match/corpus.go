package match

// Corpus is the immutable FAQ collection scanned on every match request. It
// is built once at process startup and never mutated afterwards, so matching
// needs no locking.
type Corpus struct {
	entries []Entry
}

// NewCorpus builds a corpus from loaded entries, keeping the first entry per
// ID. Later duplicates are dropped so iteration order stays deterministic.
func NewCorpus(entries []Entry) *Corpus {
	seen := make(map[string]struct{}, len(entries))
	kept := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != "" {
			if _, dup := seen[entry.ID]; dup {
				continue
			}
			seen[entry.ID] = struct{}{}
		}
		kept = append(kept, entry)
	}
	return &Corpus{entries: kept}
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries exposes the backing slice for read-only iteration.
func (c *Corpus) Entries() []Entry {
	if c == nil {
		return nil
	}
	return c.entries
}
