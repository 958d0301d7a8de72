// Package discovery tracks extensions that matched no rule, as
// candidates for growing the extension table.
package discovery

import (
	"sort"

	"sortd/internal/classifier"
)

// Suggestion is one unmatched extension and how often it appeared.
type Suggestion struct {
	Extension string
	Count     int
}

// Tally counts files left in place because no rule covered their
// extension.
type Tally struct {
	counts map[string]int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Record notes one no-rule file by its extension. Extensionless names
// are grouped under "(none)".
func (t *Tally) Record(name string) {
	ext := classifier.Extension(name)
	if ext == "" {
		ext = "(none)"
	}
	t.counts[ext]++
}

// Total returns how many files have been recorded.
func (t *Tally) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}
	return total
}

// Suggestions returns the unmatched extensions, most frequent first,
// ties in alphabetical order.
func (t *Tally) Suggestions() []Suggestion {
	suggestions := make([]Suggestion, 0, len(t.counts))
	for ext, count := range t.counts {
		suggestions = append(suggestions, Suggestion{Extension: ext, Count: count})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Count != suggestions[j].Count {
			return suggestions[i].Count > suggestions[j].Count
		}
		return suggestions[i].Extension < suggestions[j].Extension
	})
	return suggestions
}
