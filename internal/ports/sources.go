// Package ports defines the interfaces that form the contract between
// the domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"

	"github.com/abtinsr/rank-based-elections/internal/domain"
)

// BestPartySource supplies raw respondent counts per party for a chosen
// survey date. Implementations read tabular data keyed by party code
// with one column per survey date.
type BestPartySource interface {
	// PartyVotes returns the (party, votes) projection for the given
	// survey date. An unrecognized date fails with an error wrapping
	// domain.ErrDateNotFound.
	PartyVotes(ctx context.Context, date string) ([]domain.PartyCount, error)
}

// NextBestPartySource supplies redistribution shares per
// (best party, next-best party) pair for a chosen survey date.
// Rows representing whole-electorate or no-preference aggregate
// categories are excluded before the core sees them, and percentage
// shares are normalized to the [0,1] range.
type NextBestPartySource interface {
	// Preferences returns the preference rows for the given survey
	// date. An unrecognized date fails with an error wrapping
	// domain.ErrDateNotFound.
	Preferences(ctx context.Context, date string) ([]domain.PreferenceRow, error)
}
