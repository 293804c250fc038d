package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreferenceTable_Validation(t *testing.T) {
	tests := []struct {
		name          string
		counts        []PartyCount
		prefs         []PreferenceRow
		expectedError string
	}{
		{
			name: "rejects duplicate party count",
			counts: []PartyCount{
				{Party: "M", Votes: 20},
				{Party: "M", Votes: 25},
			},
			prefs:         []PreferenceRow{{Best: "M", Next: "KD", Share: 0.5}},
			expectedError: `duplicate vote count for party "M"`,
		},
		{
			name:          "rejects negative votes",
			counts:        []PartyCount{{Party: "M", Votes: -1}},
			prefs:         []PreferenceRow{{Best: "M", Next: "KD", Share: 0.5}},
			expectedError: "invalid vote count",
		},
		{
			name:          "rejects NaN votes",
			counts:        []PartyCount{{Party: "M", Votes: math.NaN()}},
			prefs:         []PreferenceRow{{Best: "M", Next: "KD", Share: 0.5}},
			expectedError: "invalid vote count",
		},
		{
			name:          "rejects share above one",
			counts:        []PartyCount{{Party: "M", Votes: 20}},
			prefs:         []PreferenceRow{{Best: "M", Next: "KD", Share: 1.2}},
			expectedError: "outside [0,1]",
		},
		{
			name:          "rejects negative share",
			counts:        []PartyCount{{Party: "M", Votes: 20}},
			prefs:         []PreferenceRow{{Best: "M", Next: "KD", Share: -0.1}},
			expectedError: "outside [0,1]",
		},
		{
			name:   "rejects duplicate preference pair",
			counts: []PartyCount{{Party: "M", Votes: 20}},
			prefs: []PreferenceRow{
				{Best: "M", Next: "KD", Share: 0.3},
				{Best: "M", Next: "KD", Share: 0.4},
			},
			expectedError: `duplicate preference pair ("M", "KD")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPreferenceTable(tt.counts, tt.prefs)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestNewPreferenceTable_JoinSemantics(t *testing.T) {
	counts := []PartyCount{
		{Party: "S", Votes: 30},
		{Party: "M", Votes: 20},
		{Party: "KD", Votes: 5}, // no preference rows: dropped
	}
	prefs := []PreferenceRow{
		{Best: "S", Next: "V", Share: 0.4},
		{Best: "S", Next: NoSecondChoice, Share: 0.6},
		{Best: "M", Next: "KD", Share: 1},
		{Best: "L", Next: "C", Share: 1}, // no vote count: dropped
	}

	table, err := NewPreferenceTable(counts, prefs)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 2, table.PartyCount())
	assert.Equal(t, []string{"S", "M"}, table.Parties())

	_, ok := table.Votes("KD")
	assert.False(t, ok, "counted party without preference rows should be dropped")
	_, ok = table.Votes("L")
	assert.False(t, ok, "preference rows without a vote count should be dropped")

	s, ok := table.Votes("S")
	require.True(t, ok)
	assert.Equal(t, PartyVotes{Current: 30, Initial: 30, Redistributed: 0}, s)
}

func TestDiehardVotes(t *testing.T) {
	table, err := NewPreferenceTable(
		[]PartyCount{
			{Party: "S", Votes: 30},
			{Party: "M", Votes: 20},
		},
		[]PreferenceRow{
			{Best: "S", Next: NoSecondChoice, Share: 0.5},
			{Best: "S", Next: UnknownSecondChoice, Share: 0.2},
			{Best: "S", Next: "V", Share: 0.3},
			{Best: "M", Next: "KD", Share: 1},
		},
	)
	require.NoError(t, err)

	diehards := DiehardVotes(table)
	assert.InDelta(t, 21, diehards["S"], 1e-9) // 30*0.5 + 30*0.2
	assert.NotContains(t, diehards, "M")
}

func TestIsSentinelNext(t *testing.T) {
	assert.True(t, IsSentinelNext(NoSecondChoice))
	assert.True(t, IsSentinelNext(UnknownSecondChoice))
	assert.False(t, IsSentinelNext("KD"))
}
