// Package survey reads the tab-separated party-preference exports and
// builds the preference table the simulation consumes. Ingestion is the
// only I/O in the system and happens once, before the simulation loop
// starts.
package survey

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/abtinsr/rank-based-elections/internal/domain"
	"github.com/abtinsr/rank-based-elections/internal/ports"
)

// Column names used by the survey exports.
const (
	columnParty    = "parti"
	columnSympathy = "partisympati"
	columnNextBest = "näst bästa parti"
)

// Aggregate categories in the next-best export that do not represent a
// single party's sympathizers. They are excluded before the core sees
// the data.
var excludedCategories = map[string]struct{}{
	"hela väljarkåren":     {},
	"ingen sympati/vet ej": {},
}

// missingValue is the export's marker for an absent measurement.
// It reads as zero, matching the source data's documented convention.
const missingValue = ".."

var (
	_ ports.BestPartySource     = (*TSVBestPartySource)(nil)
	_ ports.NextBestPartySource = (*TSVNextBestPartySource)(nil)
)

// TSVBestPartySource reads raw respondent counts from a tab-separated,
// latin-1 encoded export with one row per party and one column per
// survey date.
type TSVBestPartySource struct {
	path string
}

// NewTSVBestPartySource creates a best-party source backed by the file
// at path.
func NewTSVBestPartySource(path string) *TSVBestPartySource {
	return &TSVBestPartySource{path: path}
}

// PartyVotes implements ports.BestPartySource.
func (s *TSVBestPartySource) PartyVotes(ctx context.Context, date string) ([]domain.PartyCount, error) {
	header, records, err := readTable(ctx, s.path)
	if err != nil {
		return nil, err
	}

	partyIdx, err := columnIndex(header, columnParty, s.path)
	if err != nil {
		return nil, err
	}
	dateIdx, err := dateIndex(header, date, s.path)
	if err != nil {
		return nil, err
	}

	counts := make([]domain.PartyCount, 0, len(records))
	for i, rec := range records {
		if partyIdx >= len(rec) || dateIdx >= len(rec) {
			continue
		}
		votes, err := parseCell(rec[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", s.path, i+2, err)
		}
		counts = append(counts, domain.PartyCount{
			Party: strings.TrimSpace(rec[partyIdx]),
			Votes: votes,
		})
	}
	return counts, nil
}

// TSVNextBestPartySource reads redistribution shares from a
// tab-separated, latin-1 encoded export with one row per
// (current party, next-best party) pair and one column per survey date.
// Shares arrive as 0-100 percentages and are normalized to [0,1].
type TSVNextBestPartySource struct {
	path string
}

// NewTSVNextBestPartySource creates a next-best-party source backed by
// the file at path.
func NewTSVNextBestPartySource(path string) *TSVNextBestPartySource {
	return &TSVNextBestPartySource{path: path}
}

// Preferences implements ports.NextBestPartySource.
func (s *TSVNextBestPartySource) Preferences(ctx context.Context, date string) ([]domain.PreferenceRow, error) {
	header, records, err := readTable(ctx, s.path)
	if err != nil {
		return nil, err
	}

	bestIdx, err := columnIndex(header, columnSympathy, s.path)
	if err != nil {
		return nil, err
	}
	nextIdx, err := columnIndex(header, columnNextBest, s.path)
	if err != nil {
		return nil, err
	}
	dateIdx, err := dateIndex(header, date, s.path)
	if err != nil {
		return nil, err
	}

	prefs := make([]domain.PreferenceRow, 0, len(records))
	for i, rec := range records {
		if bestIdx >= len(rec) || nextIdx >= len(rec) || dateIdx >= len(rec) {
			continue
		}
		best := strings.TrimSpace(rec[bestIdx])
		if _, excluded := excludedCategories[best]; excluded {
			continue
		}
		share, err := parseCell(rec[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", s.path, i+2, err)
		}
		prefs = append(prefs, domain.PreferenceRow{
			Best:  best,
			Next:  strings.TrimSpace(rec[nextIdx]),
			Share: share / 100,
		})
	}
	return prefs, nil
}

// readTable reads a latin-1 encoded, tab-separated file and returns the
// header row and the remaining records.
func readTable(ctx context.Context, path string) ([]string, [][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open survey file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("read %s: missing header row", path)
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	return header, rows[1:], nil
}

// columnIndex locates a named column in the header.
func columnIndex(header []string, name, path string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: column %q not found", path, name)
}

// dateIndex locates the survey date column. Date selection is by
// column-name lookup; an unrecognized date fails with
// domain.ErrDateNotFound.
func dateIndex(header []string, date, path string) (int, error) {
	for i, h := range header {
		if h == date {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: %w: %q", path, domain.ErrDateNotFound, date)
}

// parseCell converts one table cell to a float. The export marks
// missing measurements with ".." and uses decimal commas.
func parseCell(cell string) (float64, error) {
	v := strings.TrimSpace(cell)
	if v == "" || v == missingValue {
		return 0, nil
	}
	v = strings.ReplaceAll(v, " ", "")
	v = strings.ReplaceAll(v, " ", "")
	v = strings.ReplaceAll(v, ",", ".")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric cell %q", cell)
	}
	return f, nil
}
