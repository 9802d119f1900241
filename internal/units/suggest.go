package units

import (
	"github.com/sahilm/fuzzy"
)

// DefaultSuggestions is the number of "did you mean" candidates shown for
// an unknown unit.
const DefaultSuggestions = 3

// Suggest returns up to limit unit symbols whose symbol or alias fuzzily
// matches name, best match first. It is only used for hints; Lookup never
// guesses.
func (r *Registry) Suggest(name string, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}

	var names []string
	var owner []int
	for idx, u := range r.units {
		for _, n := range u.Names() {
			names = append(names, n)
			owner = append(owner, idx)
		}
	}

	var out []string
	seen := make(map[int]bool)
	for _, m := range fuzzy.Find(name, names) {
		idx := owner[m.Index]
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, r.units[idx].Symbol)
		if len(out) == limit {
			break
		}
	}
	return out
}
