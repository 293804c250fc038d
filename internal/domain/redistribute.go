package domain

// Elimination describes one completed redistribution round. It is
// diagnostic output for observers and logging, not part of the table's
// data contract.
type Elimination struct {
	// Party is the eliminated party.
	Party string

	// LeadingShare is the leader's combined vote share measured before
	// this round's transfer was applied.
	LeadingShare float64

	// Transferred is the vote total moved into parties present in the
	// table.
	Transferred float64

	// Dropped is the vote total that left the simulation this round:
	// shares pointing at the no-second-choice sentinels plus shares
	// pointing at destinations absent from the table.
	Dropped float64
}

// RedistributeRound performs one round of elimination and vote
// transfer, mutating the table in place:
//
//  1. The bottom party (smallest strictly positive live count) is
//     identified.
//  2. For every preference row of the bottom party, the transfer is
//     initial votes times the redistribution share. The initial count
//     is used, never the live one.
//  3. Each destination present in the table as a best party receives
//     its transfer into the redistributed bucket. Destinations absent
//     from the table silently drop their fraction; this left-join
//     behavior is documented and preserved, not a defect.
//  4. The bottom party's live count is zeroed. Eliminated parties are
//     never revived.
//
// Returns ErrNoEligibleParty when no party is left to eliminate.
func RedistributeRound(t *PreferenceTable) (Elimination, error) {
	bottom, err := BottomParty(t)
	if err != nil {
		return Elimination{}, err
	}

	elim := Elimination{Party: bottom, LeadingShare: LeadingVoteShare(t)}
	initial := t.votes[bottom].initial
	for _, row := range t.rows {
		if row.Best != bottom {
			continue
		}
		amount := initial * row.Share
		if dest, ok := t.votes[row.Next]; ok {
			dest.redistributed += amount
			elim.Transferred += amount
		} else {
			elim.Dropped += amount
		}
	}
	t.votes[bottom].current = 0
	return elim, nil
}
