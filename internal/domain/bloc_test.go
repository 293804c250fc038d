package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlocOf(t *testing.T) {
	tests := []struct {
		party string
		bloc  Bloc
	}{
		{"V", BlocSocialDemocracy},
		{"S", BlocSocialDemocracy},
		{"MP", BlocSocialDemocracy},
		{"M", BlocAlliance},
		{"C", BlocAlliance},
		{"L", BlocAlliance},
		{"KD", BlocAlliance},
		{"SD", BlocSwedenDemocrats},
		{"övriga", BlocOther},
	}

	for _, tt := range tests {
		t.Run(tt.party, func(t *testing.T) {
			bloc, err := BlocOf(tt.party)
			require.NoError(t, err)
			assert.Equal(t, tt.bloc, bloc)
		})
	}
}

func TestBlocOf_UnknownParty(t *testing.T) {
	_, err := BlocOf("XX")
	require.Error(t, err)

	var unknownErr *UnknownPartyError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "XX", unknownErr.Party)
}

func TestBlocOf_SuggestsClosestCode(t *testing.T) {
	_, err := BlocOf("SDD")
	var unknownErr *UnknownPartyError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "SD", unknownErr.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "SD"`)
}

func TestKnownParties_SortedAndComplete(t *testing.T) {
	parties := KnownParties()
	assert.Len(t, parties, 9)
	assert.IsIncreasing(t, parties)
	assert.Contains(t, parties, "övriga")
}
