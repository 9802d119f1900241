package constants

import (
	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit constant keys whose key, alias or name
// fuzzily matches query, best match first.
func (t *Table) Suggest(query string, limit int) []string {
	if query == "" || limit <= 0 {
		return nil
	}

	var names []string
	var owner []int
	for idx, e := range t.entries {
		for _, n := range append([]string{e.Key, e.Name}, e.Aliases...) {
			names = append(names, n)
			owner = append(owner, idx)
		}
	}

	var out []string
	seen := make(map[int]bool)
	for _, m := range fuzzy.Find(query, names) {
		idx := owner[m.Index]
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, t.entries[idx].Key)
		if len(out) == limit {
			break
		}
	}
	return out
}
