package store

import "github.com/sahilm/fuzzy"

// entrySource adapts entries to the matcher, which scores descriptions only.
type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].Description }
func (s entrySource) Len() int            { return len(s) }

// Find returns the entries whose description fuzzy-matches the query: the
// query's characters must appear in the description in order, though not
// necessarily contiguously. An empty query matches everything. The order of
// matches is unspecified. Find never touches the store file.
func (s *Store) Find(query string) []Entry {
	entries := s.Entries()
	if query == "" {
		return entries
	}

	var matches []Entry
	for _, m := range fuzzy.FindFrom(query, entrySource(entries)) {
		matches = append(matches, entries[m.Index])
	}
	return matches
}
