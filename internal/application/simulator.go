// Package application orchestrates the election simulation: the
// iterate-until-convergence loop over the preference table, final
// tally assembly, and configuration loading.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abtinsr/rank-based-elections/internal/domain"
	"github.com/abtinsr/rank-based-elections/internal/ports"
)

// SimulatorConfig defines the configuration parameters for the
// Simulator. Configuration is validated during construction and
// immutable afterwards.
type SimulatorConfig struct {
	// Threshold is the combined vote share, in percentage points, a
	// party must reach for the elimination loop to stop.
	//
	// Range: (0, 100]
	// Default: 50 (simple majority)
	Threshold float64 `yaml:"threshold" validate:"gt=0,lte=100"`
}

// DefaultSimulatorConfig returns a SimulatorConfig with the standard
// simple-majority threshold.
func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{Threshold: 50}
}

// Simulator runs the instant-runoff-style tally: it repeatedly
// eliminates the lowest-polling party and redistributes its support
// until one party's combined share reaches the threshold or the
// safety bound of one round per distinct party is exhausted.
type Simulator struct {
	config    SimulatorConfig
	logger    *slog.Logger
	observers []ports.RoundObserver
}

// NewSimulator creates a Simulator with the given configuration.
// A nil logger falls back to slog.Default. Observers receive per-round
// diagnostic notifications; they are optional.
func NewSimulator(config SimulatorConfig, logger *slog.Logger, observers ...ports.RoundObserver) (*Simulator, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{
		config:    config,
		logger:    logger,
		observers: observers,
	}, nil
}

// Simulate runs the elimination loop to termination and returns the
// final tally. The table is mutated in place round by round and should
// be discarded afterwards.
//
// Termination: the loop exits when the leading combined vote share
// reaches the threshold, or after at most one round per distinct party
// in the table. The second condition is a hard safety bound preventing
// infinite elimination when no party ever crosses the threshold.
//
// Errors:
//   - domain.ErrEmptyDataset when the table has no rows; the
//     simulation does not start.
//   - domain.ErrNoEligibleParty if a round finds no party left to
//     eliminate. Unreachable while the loop guard holds.
//
// Nothing is retried: the computation is deterministic, so a retry
// cannot change the outcome, and a failed simulation yields no tally.
func (s *Simulator) Simulate(ctx context.Context, table *domain.PreferenceTable) (*domain.Tally, error) {
	if table == nil || table.Len() == 0 {
		return nil, domain.ErrEmptyDataset
	}

	start := time.Now()
	partyCount := table.PartyCount()
	for _, o := range s.observers {
		o.SimulationStarted(ctx, partyCount)
	}

	// Diehard votes derive from the immutable initial counts, so the
	// aggregate is computed once, before any eliminations.
	diehards := domain.DiehardVotes(table)

	rounds := 0
	for domain.LeadingVoteShare(table) < s.config.Threshold && rounds < partyCount {
		elim, err := domain.RedistributeRound(table)
		if err != nil {
			err = fmt.Errorf("round %d: %w", rounds+1, err)
			s.notifyCompleted(ctx, nil, time.Since(start), err)
			return nil, err
		}
		rounds++

		s.logger.Info("party eliminated",
			"round", rounds,
			"party", elim.Party,
			"leading_share", elim.LeadingShare,
			"transferred", elim.Transferred,
			"dropped", elim.Dropped,
		)
		for _, o := range s.observers {
			o.RoundCompleted(ctx, rounds, elim)
		}
	}

	tally := finalize(table, diehards, rounds)
	s.notifyCompleted(ctx, tally, time.Since(start), nil)
	return tally, nil
}

func (s *Simulator) notifyCompleted(ctx context.Context, tally *domain.Tally, elapsed time.Duration, err error) {
	for _, o := range s.observers {
		o.SimulationCompleted(ctx, tally, elapsed, err)
	}
}

// finalize assembles the final tally from a terminal table. For every
// eliminated party (live count zero) the diehard total is restored as
// its unmovable core; every party then gains its redistributed votes.
// finalize is a pure read of the table: running it twice on the same
// terminal table yields the same tally.
func finalize(table *domain.PreferenceTable, diehards map[string]float64, rounds int) *domain.Tally {
	votes := make(map[string]float64, table.PartyCount())
	for _, party := range table.Parties() {
		v, _ := table.Votes(party)
		current := v.Current
		if current == 0 {
			current = diehards[party]
		}
		votes[party] = current + v.Redistributed
	}
	return &domain.Tally{Votes: votes, Rounds: rounds}
}
