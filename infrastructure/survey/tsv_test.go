package survey

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/abtinsr/rank-based-elections/internal/domain"
)

// writeLatin1 writes a survey fixture in the export's latin-1 encoding.
func writeLatin1(t *testing.T, name, content string) string {
	t.Helper()
	encoded, err := charmap.ISO8859_1.NewEncoder().String(content)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o600))
	return path
}

const bestPartyFixture = "parti\tkön\tålder\t2019-11\t2022-05\n" +
	"M\tx\tx\t20,5\t18\n" +
	"S\tx\tx\t25\t30,2\n" +
	"övriga\tx\tx\t..\t5\n"

const nextBestFixture = "partisympati\tnäst bästa parti\t2019-11\t2022-05\n" +
	"hela väljarkåren\tM\t10\t12\n" +
	"ingen sympati/vet ej\tM\t3\t4\n" +
	"M\tKD\t45,5\t40\n" +
	"M\tinget parti\t30\t35\n" +
	"S\tV\t..\t20\n"

func TestTSVBestPartySource_PartyVotes(t *testing.T) {
	path := writeLatin1(t, "best_party.csv", bestPartyFixture)
	source := NewTSVBestPartySource(path)

	counts, err := source.PartyVotes(context.Background(), "2019-11")
	require.NoError(t, err)

	require.Len(t, counts, 3)
	assert.Equal(t, "M", counts[0].Party)
	assert.InDelta(t, 20.5, counts[0].Votes, 1e-9, "decimal commas are parsed")
	assert.Equal(t, "S", counts[1].Party)
	assert.InDelta(t, 25, counts[1].Votes, 1e-9)
	assert.Equal(t, "övriga", counts[2].Party, "latin-1 party names survive decoding")
	assert.Zero(t, counts[2].Votes, `".." reads as zero`)
}

func TestTSVBestPartySource_DateNotFound(t *testing.T) {
	path := writeLatin1(t, "best_party.csv", bestPartyFixture)
	source := NewTSVBestPartySource(path)

	_, err := source.PartyVotes(context.Background(), "1999-01")
	assert.ErrorIs(t, err, domain.ErrDateNotFound)
	assert.Contains(t, err.Error(), `"1999-01"`)
}

func TestTSVNextBestPartySource_Preferences(t *testing.T) {
	path := writeLatin1(t, "next_best_party.csv", nextBestFixture)
	source := NewTSVNextBestPartySource(path)

	prefs, err := source.Preferences(context.Background(), "2019-11")
	require.NoError(t, err)

	// The two aggregate categories never reach the core.
	require.Len(t, prefs, 3)
	assert.Equal(t, "M", prefs[0].Best)
	assert.Equal(t, "KD", prefs[0].Next)
	assert.InDelta(t, 0.455, prefs[0].Share, 1e-9, "percentages are normalized to [0,1]")
	assert.Equal(t, domain.NoSecondChoice, prefs[1].Next)
	assert.InDelta(t, 0.30, prefs[1].Share, 1e-9)
	assert.Equal(t, "V", prefs[2].Next)
	assert.Zero(t, prefs[2].Share)
}

func TestTSVSource_InvalidCell(t *testing.T) {
	path := writeLatin1(t, "best_party.csv",
		"parti\t2019-11\nM\tnot-a-number\n")
	source := NewTSVBestPartySource(path)

	_, err := source.PartyVotes(context.Background(), "2019-11")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid numeric cell")
	assert.Contains(t, err.Error(), "row 2")
}

func TestTSVSource_MissingColumn(t *testing.T) {
	path := writeLatin1(t, "next_best_party.csv",
		"partisympati\t2019-11\nM\t10\n")
	source := NewTSVNextBestPartySource(path)

	_, err := source.Preferences(context.Background(), "2019-11")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "näst bästa parti" not found`)
}

func TestTSVSource_MissingFile(t *testing.T) {
	source := NewTSVBestPartySource(filepath.Join(t.TempDir(), "nope.csv"))
	_, err := source.PartyVotes(context.Background(), "2019-11")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open survey file")
}

func TestTSVSource_CancelledContext(t *testing.T) {
	path := writeLatin1(t, "best_party.csv", bestPartyFixture)
	source := NewTSVBestPartySource(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := source.PartyVotes(ctx, "2019-11")
	assert.ErrorIs(t, err, context.Canceled)
}
