package domain

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Bloc is a political grouping label applied to parties for aggregate
// reporting. Bloc membership is independent of the election simulation
// itself.
type Bloc string

// Political blocs of the party landscape covered by the survey data.
const (
	// BlocSocialDemocracy groups the left-of-centre parties.
	BlocSocialDemocracy Bloc = "Socialdemokratin"

	// BlocAlliance groups the centre-right alliance parties.
	BlocAlliance Bloc = "Alliansen"

	// BlocSwedenDemocrats is the single-party Sweden Democrats bloc.
	BlocSwedenDemocrats Bloc = "SD"

	// BlocOther collects parties outside the parliamentary blocs.
	BlocOther Bloc = "övriga"
)

// blocByParty is the static party-to-bloc lookup. It is initialized once
// and read-only thereafter.
var blocByParty = map[string]Bloc{
	"V":      BlocSocialDemocracy,
	"S":      BlocSocialDemocracy,
	"MP":     BlocSocialDemocracy,
	"M":      BlocAlliance,
	"C":      BlocAlliance,
	"L":      BlocAlliance,
	"KD":     BlocAlliance,
	"SD":     BlocSwedenDemocrats,
	"övriga": BlocOther,
}

// KnownParties returns the enumerated party codes covered by the bloc
// lookup, sorted for deterministic iteration.
func KnownParties() []string {
	parties := make([]string, 0, len(blocByParty))
	for party := range blocByParty {
		parties = append(parties, party)
	}
	sort.Strings(parties)
	return parties
}

// BlocOf maps a party code to its political bloc.
// It is a total function over the enumerated set of party codes and
// returns an *UnknownPartyError for any code outside that set. When a
// known code is close to the requested one, the error carries a
// spelling suggestion.
func BlocOf(party string) (Bloc, error) {
	if bloc, ok := blocByParty[party]; ok {
		return bloc, nil
	}
	return "", &UnknownPartyError{Party: party, Suggestion: closestParty(party)}
}

// closestParty returns the known party code with the smallest edit
// distance from the given code, or empty when nothing is within two
// edits. Iteration is over the sorted code list so ties resolve
// deterministically.
func closestParty(party string) string {
	const maxDistance = 2
	best := ""
	bestDistance := maxDistance + 1
	for _, known := range KnownParties() {
		if d := levenshtein.ComputeDistance(party, known); d < bestDistance {
			best, bestDistance = known, d
		}
	}
	return best
}
