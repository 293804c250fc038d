package survey

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/abtinsr/rank-based-elections/internal/domain"
	"github.com/abtinsr/rank-based-elections/internal/ports"
)

// Loader joins the two survey sources into a simulation-ready
// preference table for a single survey date.
type Loader struct {
	best ports.BestPartySource
	next ports.NextBestPartySource
}

// NewLoader creates a Loader over the given sources.
func NewLoader(best ports.BestPartySource, next ports.NextBestPartySource) *Loader {
	return &Loader{best: best, next: next}
}

// Load fetches both projections for the date and builds the preference
// table. The two sources are independent files, so they are read
// concurrently; the simulation itself stays single-threaded.
func (l *Loader) Load(ctx context.Context, date string) (*domain.PreferenceTable, error) {
	var (
		counts []domain.PartyCount
		prefs  []domain.PreferenceRow
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = l.best.PartyVotes(ctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		prefs, err = l.next.Preferences(ctx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewPreferenceTable(counts, prefs)
}
