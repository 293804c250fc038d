// Package report renders simulation output for human consumption:
// the final tally with bloc labels, and bloc-level aggregates.
package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/abtinsr/rank-based-elections/internal/domain"
)

// collator orders party and bloc names the Swedish way, so that
// "övriga" sorts after z rather than by raw byte value.
var collator = collate.New(language.Swedish)

// RenderTally renders the final tally as a text table with one row per
// party: code, bloc label, final votes, and share of the tallied total.
// Parties are ordered by votes descending with Swedish-collated code
// order as the tie-break.
// Fails with *domain.UnknownPartyError when a tallied party has no
// bloc mapping.
func RenderTally(tally *domain.Tally) (string, error) {
	entries := tally.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Votes != entries[j].Votes {
			return entries[i].Votes > entries[j].Votes
		}
		return collator.CompareString(entries[i].Party, entries[j].Party) < 0
	})

	total := tally.Total()

	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-18s %10s %8s\n", "PARTY", "BLOC", "VOTES", "SHARE")
	for _, e := range entries {
		bloc, err := domain.BlocOf(e.Party)
		if err != nil {
			return "", err
		}
		share := 0.0
		if total > 0 {
			share = e.Votes / total * 100
		}
		fmt.Fprintf(&b, "%-8s %-18s %10.1f %7.1f%%\n", e.Party, bloc, e.Votes, share)
	}
	fmt.Fprintf(&b, "\n%d redistribution round(s) run.\n", tally.Rounds)
	return b.String(), nil
}

// RenderBlocTotals renders the tally aggregated per political bloc,
// ordered by total votes descending.
func RenderBlocTotals(tally *domain.Tally) (string, error) {
	totals := make(map[domain.Bloc]float64)
	for party, votes := range tally.Votes {
		bloc, err := domain.BlocOf(party)
		if err != nil {
			return "", err
		}
		totals[bloc] += votes
	}

	blocs := make([]domain.Bloc, 0, len(totals))
	for bloc := range totals {
		blocs = append(blocs, bloc)
	}
	sort.SliceStable(blocs, func(i, j int) bool {
		if totals[blocs[i]] != totals[blocs[j]] {
			return totals[blocs[i]] > totals[blocs[j]]
		}
		return collator.CompareString(string(blocs[i]), string(blocs[j])) < 0
	})

	var b strings.Builder
	fmt.Fprintf(&b, "%-18s %10s\n", "BLOC", "VOTES")
	for _, bloc := range blocs {
		fmt.Fprintf(&b, "%-18s %10.1f\n", bloc, totals[bloc])
	}
	return b.String(), nil
}
