package domain

import "sort"

// Standing is one party's position in the current results: its live
// vote count and the votes it has received from eliminated parties.
type Standing struct {
	Party         string
	Current       float64
	Redistributed float64
}

// Project derives the current standings from a table snapshot: one
// entry per distinct best party, sorted by live votes descending.
// The sort is stable over first-seen party order so that ties resolve
// deterministically. Pure read, no side effects.
func Project(t *PreferenceTable) []Standing {
	standings := make([]Standing, 0, len(t.order))
	for _, party := range t.order {
		v := t.votes[party]
		standings = append(standings, Standing{
			Party:         party,
			Current:       v.current,
			Redistributed: v.redistributed,
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Current > standings[j].Current
	})
	return standings
}

// BottomParty returns the party with the smallest strictly positive
// live vote count: the next candidate for elimination. Parties already
// eliminated (zeroed) are excluded. Returns ErrNoEligibleParty when
// every party has been eliminated.
func BottomParty(t *PreferenceTable) (string, error) {
	bottom := ""
	for _, s := range Project(t) {
		if s.Current > 0 {
			bottom = s.Party
		}
	}
	if bottom == "" {
		return "", ErrNoEligibleParty
	}
	return bottom, nil
}

// LeadingVoteShare returns the combined vote share, live plus
// redistributed, of the party currently ranked first by live votes
// alone.
//
// The two steps are deliberately distinct: ranking uses the live count
// before totaling, while the reported share uses the combined value.
// Collapsing them into a single rank-by-total changes simulation
// outcomes.
func LeadingVoteShare(t *PreferenceTable) float64 {
	standings := Project(t)
	if len(standings) == 0 {
		return 0
	}
	leader := standings[0]
	return leader.Current + leader.Redistributed
}
