// Package domain contains the pure, dependency-light data model and
// algorithms for the rank-based election simulation: the preference
// table, standings projection, vote redistribution, and the party-to-
// bloc lookup.
package domain

import (
	"fmt"
	"math"
)

// Sentinel values a respondent's next-best preference can take when no
// usable second choice was recorded. Votes behind these rows are never
// redistributed; they form the per-party diehard aggregate instead.
const (
	// NoSecondChoice marks respondents who reported no second
	// preference at all.
	NoSecondChoice = "inget parti"

	// UnknownSecondChoice marks respondents whose second preference is
	// unknown or missing from the survey.
	UnknownSecondChoice = "vet ej/uppgift saknas"
)

// IsSentinelNext reports whether a next-best value is one of the
// no-usable-second-choice markers.
func IsSentinelNext(next string) bool {
	return next == NoSecondChoice || next == UnknownSecondChoice
}

// PartyCount is one party's raw respondent count for a survey date, as
// supplied by the best-party source.
type PartyCount struct {
	// Party is the party code.
	Party string

	// Votes is the raw support for the party at the survey date,
	// expressed in percentage points of the electorate.
	Votes float64
}

// PreferenceRow is one observed (best party, next-best party) pair for
// a survey date, as supplied by the next-best-party source.
type PreferenceRow struct {
	// Best is the respondent's first-choice party.
	Best string

	// Next is the respondent's stated fallback choice, or one of the
	// sentinel markers when no usable second preference exists.
	Next string

	// Share is the fraction in [0,1] of Best's voters who would move to
	// Next if Best were eliminated. Shares for a single best party need
	// not sum to 1.
	Share float64
}

// partyVotes tracks one party's live vote state during simulation.
type partyVotes struct {
	// current is the live vote count, zeroed when the party is
	// eliminated and never revived afterwards.
	current float64

	// initial is the vote count at simulation start. It never changes
	// after construction and is the basis for all redistribution math.
	initial float64

	// redistributed accumulates votes received from eliminated parties.
	// It only increases.
	redistributed float64
}

// PartyVotes is a read-only snapshot of one party's vote state.
type PartyVotes struct {
	// Current is the live vote count; zero once the party is eliminated.
	Current float64

	// Initial is the immutable vote count at simulation start.
	Initial float64

	// Redistributed is the cumulative total received from eliminated
	// parties so far.
	Redistributed float64
}

// PreferenceTable is the in-memory relational structure the simulation
// iterates over. Preference rows are stored once per (best, next) pair;
// vote state is held in an explicit per-party aggregate built at
// construction, so there is no duplicated per-row vote column to keep
// consistent.
//
// The table is built once from the two survey sources, mutated in place
// round by round by RedistributeRound, and read by the standings
// projection. It is not safe for concurrent use; the simulation is a
// single-threaded batch computation.
type PreferenceTable struct {
	rows  []PreferenceRow
	votes map[string]*partyVotes
	// order preserves first-seen party order so that sorts and
	// tie-breaks are deterministic.
	order []string
}

// NewPreferenceTable joins the best-party counts with the next-best
// preference rows into a simulation-ready table, scoped to a single
// survey date.
//
// Join semantics follow the source data: only parties present in both
// inputs survive. A preference row whose best party has no vote count
// is dropped, as is a counted party with no preference rows.
//
// Construction fails fast with a *ValidationError when the inputs are
// malformed:
//   - a duplicate party in counts (conflicting vote values would
//     otherwise be silently averaged away),
//   - a negative or non-finite vote count,
//   - a redistribution share outside [0,1] or non-finite,
//   - a duplicate (best, next) pair.
func NewPreferenceTable(counts []PartyCount, prefs []PreferenceRow) (*PreferenceTable, error) {
	verr := NewValidationError("preference table")

	byParty := make(map[string]float64, len(counts))
	for _, c := range counts {
		if _, dup := byParty[c.Party]; dup {
			verr.AddError(fmt.Sprintf("duplicate vote count for party %q", c.Party))
			continue
		}
		if math.IsNaN(c.Votes) || math.IsInf(c.Votes, 0) || c.Votes < 0 {
			verr.AddError(fmt.Sprintf("invalid vote count %f for party %q", c.Votes, c.Party))
			continue
		}
		byParty[c.Party] = c.Votes
	}

	type pair struct{ best, next string }
	seen := make(map[pair]struct{}, len(prefs))
	for _, p := range prefs {
		key := pair{p.Best, p.Next}
		if _, dup := seen[key]; dup {
			verr.AddError(fmt.Sprintf("duplicate preference pair (%q, %q)", p.Best, p.Next))
			continue
		}
		seen[key] = struct{}{}
		if math.IsNaN(p.Share) || p.Share < 0 || p.Share > 1 {
			verr.AddError(fmt.Sprintf("redistribution share %f for (%q, %q) outside [0,1]", p.Share, p.Best, p.Next))
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	t := &PreferenceTable{votes: make(map[string]*partyVotes)}
	for _, p := range prefs {
		votes, ok := byParty[p.Best]
		if !ok {
			// No vote count for this best party: inner-join drop.
			continue
		}
		if _, ok := t.votes[p.Best]; !ok {
			t.votes[p.Best] = &partyVotes{current: votes, initial: votes}
			t.order = append(t.order, p.Best)
		}
		t.rows = append(t.rows, p)
	}
	return t, nil
}

// Len returns the number of preference rows in the table.
func (t *PreferenceTable) Len() int { return len(t.rows) }

// PartyCount returns the number of distinct best parties in the table.
func (t *PreferenceTable) PartyCount() int { return len(t.order) }

// Parties returns the distinct best parties in first-seen order.
func (t *PreferenceTable) Parties() []string {
	parties := make([]string, len(t.order))
	copy(parties, t.order)
	return parties
}

// Rows returns a copy of the preference rows.
func (t *PreferenceTable) Rows() []PreferenceRow {
	rows := make([]PreferenceRow, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Votes returns the vote state snapshot for a party and whether the
// party exists in the table.
func (t *PreferenceTable) Votes(party string) (PartyVotes, bool) {
	v, ok := t.votes[party]
	if !ok {
		return PartyVotes{}, false
	}
	return PartyVotes{Current: v.current, Initial: v.initial, Redistributed: v.redistributed}, true
}

// DiehardVotes computes, per party, the sum of votes whose respondents
// reported no usable secondary preference. It is derived from the
// immutable initial counts, so the aggregate is loop-invariant and is
// computed once before the elimination loop begins.
func DiehardVotes(t *PreferenceTable) map[string]float64 {
	diehards := make(map[string]float64)
	for _, row := range t.rows {
		if !IsSentinelNext(row.Next) {
			continue
		}
		diehards[row.Best] += t.votes[row.Best].initial * row.Share
	}
	return diehards
}
