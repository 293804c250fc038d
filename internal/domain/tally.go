package domain

import "sort"

// Tally is the final outcome of a simulation run: each party's final
// vote total after eliminations, diehard restoration, and accumulation
// of redistributed votes.
type Tally struct {
	// Votes maps party code to final vote total.
	Votes map[string]float64

	// Rounds is the number of redistribution rounds that ran.
	Rounds int
}

// TallyEntry is one party's final total in ranked order.
type TallyEntry struct {
	Party string
	Votes float64
}

// Entries returns the tally sorted by final votes descending, with
// party code as the tie-break for deterministic output.
func (t *Tally) Entries() []TallyEntry {
	entries := make([]TallyEntry, 0, len(t.Votes))
	for party, votes := range t.Votes {
		entries = append(entries, TallyEntry{Party: party, Votes: votes})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Votes != entries[j].Votes {
			return entries[i].Votes > entries[j].Votes
		}
		return entries[i].Party < entries[j].Party
	})
	return entries
}

// Total returns the sum of all final vote totals.
func (t *Tally) Total() float64 {
	total := 0.0
	for _, votes := range t.Votes {
		total += votes
	}
	return total
}
